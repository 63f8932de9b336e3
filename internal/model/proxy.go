package model

// Action discriminates proxy requests.
type Action string

const (
	ActionGenerateLyrics           Action = "generateLyrics"
	ActionGenerateImageDescription Action = "generateImageDescription"
)

// ProxyRequest is the body accepted by the proxy endpoint. Exactly one of
// Prompt and File is meaningful, depending on Action.
type ProxyRequest struct {
	Action Action      `json:"action" validate:"required,oneof=generateLyrics generateImageDescription"`
	Prompt string      `json:"prompt,omitempty" validate:"required_if=Action generateLyrics"`
	File   *InlineFile `json:"file,omitempty" validate:"required_if=Action generateImageDescription"`
}

// InlineFile carries base64 encoded file content.
type InlineFile struct {
	Data     string `json:"data" validate:"required"`
	MIMEType string `json:"mimeType" validate:"required"`
}

// ProxyResponse is the envelope returned by the proxy endpoint.
type ProxyResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
