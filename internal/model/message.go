package model

// Message is a transient user-facing notice. At most one is visible at a time.
type Message struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Message titles and fixed contents
const (
	TitleAPIError           = "API Error"
	TitleImageAnalysisError = "Image Analysis Error"
	TitleCopied             = "Copied!"
	TitleCopyError          = "Copy Error"
	TitleExported           = "Exported!"

	ContentCopied    = "Lyrics successfully copied to your clipboard."
	ContentCopyError = "Could not copy text. Please select it manually."
	ContentExported  = "Your lyrics have been downloaded as a .txt file."
)
