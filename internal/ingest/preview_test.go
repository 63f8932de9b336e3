package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagePreview(t *testing.T) {
	f := NewFile("dot.png", "image/png", []byte{0x89, 'P', 'N', 'G'})

	p, err := ImagePreview(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, PreviewImage, p.Kind)
	assert.Equal(t, "data:image/png;base64,iVBORw==", p.Data)
}

func TestTextPreview(t *testing.T) {
	f := NewFile("notes.md", "", []byte("verse one\nverse two"))

	p, err := TextPreview(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, PreviewText, p.Kind)
	assert.Equal(t, "verse one\nverse two", p.Data)
}

func TestGenericPreview(t *testing.T) {
	p := GenericPreview()
	assert.Equal(t, PreviewGeneric, p.Kind)
	assert.Equal(t, "generic", p.Data)
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain utf8", []byte("மழை"), "மழை"},
		{"utf8 bom dropped", []byte("\xef\xbb\xbfhi"), "hi"},
		{"utf16le bom", []byte("\xff\xfeh\x00i\x00"), "hi"},
		{"utf16be bom", []byte("\xfe\xff\x00h\x00i"), "hi"},
		{"invalid bytes replaced", []byte("a\xffb"), "a\uFFFDb"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeText(tt.in))
		})
	}
}
