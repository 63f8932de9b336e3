// Package ingest turns an inspiration file into something the session can use:
// a category, a preview, and for text files the theme itself.
package ingest

import "strings"

// Category is the coarse kind of an inspiration file.
type Category string

const (
	CategoryImage   Category = "image"
	CategoryText    Category = "text"
	CategoryGeneric Category = "generic"
)

// TextMIMETypes are the declared mime types recognized as text.
var TextMIMETypes = map[string]bool{
	"text/plain":             true,
	"text/markdown":          true,
	"text/csv":               true,
	"text/html":              true,
	"application/javascript": true,
	"application/json":       true,
}

// TextExtensions are the lower-cased filename extensions recognized as text.
var TextExtensions = map[string]bool{
	".py":   true,
	".js":   true,
	".jsx":  true,
	".ts":   true,
	".tsx":  true,
	".css":  true,
	".scss": true,
	".html": true,
	".md":   true,
	".txt":  true,
	".csv":  true,
	".json": true,
}

// Classify decides the category from the declared mime type and the filename.
// An image/* mime type wins outright; a recognized text mime type is sufficient
// on its own; otherwise the extension after the last dot decides.
func Classify(name, mimeType string) Category {
	if strings.HasPrefix(mimeType, "image/") {
		return CategoryImage
	}
	if TextMIMETypes[mimeType] || TextExtensions[Extension(name)] {
		return CategoryText
	}
	return CategoryGeneric
}

// Extension returns the lower-cased text after the last dot, prefixed with a
// dot. A name without a dot is treated as all extension, so a file named "md"
// has extension ".md".
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	return "." + strings.ToLower(name[i+1:])
}
