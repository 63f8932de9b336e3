package ingest

import (
	"context"
	"encoding/base64"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// PreviewKind tells a renderer how to show a Preview.
type PreviewKind string

const (
	PreviewImage   PreviewKind = "image"
	PreviewText    PreviewKind = "text"
	PreviewGeneric PreviewKind = "generic"
)

// GenericSentinel is the preview data of a file that has no preview.
const GenericSentinel = "generic"

// Preview is the read-only representation of the attached file.
type Preview struct {
	Kind PreviewKind `json:"kind"`
	Data string      `json:"data"`
}

// GenericPreview marks a binary file without preview content.
func GenericPreview() Preview {
	return Preview{Kind: PreviewGeneric, Data: GenericSentinel}
}

// ImagePreview renders the file as a data URL.
func ImagePreview(ctx context.Context, f *File) (Preview, error) {
	data, err := f.ReadAll(ctx)
	if err != nil {
		return Preview{}, err
	}
	return Preview{Kind: PreviewImage, Data: DataURL(f.MIMEType, data)}, nil
}

// TextPreview decodes the file as text.
func TextPreview(ctx context.Context, f *File) (Preview, error) {
	data, err := f.ReadAll(ctx)
	if err != nil {
		return Preview{}, err
	}
	return Preview{Kind: PreviewText, Data: DecodeText(data)}, nil
}

// DataURL encodes data as a base64 data URL.
func DataURL(mimeType string, data []byte) string {
	var sb strings.Builder
	sb.WriteString("data:")
	sb.WriteString(mimeType)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

// DecodeText decodes UTF-8, replacing invalid sequences with U+FFFD. A leading
// UTF-8 or UTF-16 byte order mark switches the decoder and is dropped.
func DecodeText(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}
