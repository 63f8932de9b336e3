package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const readChunkSize = 32 * 1024

// File is an inspiration file: a name, a declared mime type and a content
// source that can be opened again for every read.
type File struct {
	Name     string
	MIMEType string
	Size     int64

	open func() (io.ReadCloser, error)
}

// NewFile wraps in-memory content.
func NewFile(name, mimeType string, data []byte) *File {
	return &File{
		Name:     name,
		MIMEType: mimeType,
		Size:     int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// NewFileSource wraps a content source that is opened lazily on each read.
func NewFileSource(name, mimeType string, size int64, open func() (io.ReadCloser, error)) *File {
	return &File{Name: name, MIMEType: mimeType, Size: size, open: open}
}

// Open describes a file on disk. The declared mime type is sniffed from its
// content the way a browser fills File.type; parameters such as charset are dropped.
func Open(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat inspiration file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("inspiration file %s is a directory", path)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect mime type: %w", err)
	}

	return &File{
		Name:     filepath.Base(path),
		MIMEType: baseMIMEType(mtype.String()),
		Size:     info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// Category classifies the file.
func (f *File) Category() Category {
	return Classify(f.Name, f.MIMEType)
}

// ReadAll reads the whole content. The read stops early when ctx is done and
// the underlying reader is closed on every path.
func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	if f.open == nil {
		return nil, fmt.Errorf("read %s: no content source", f.Name)
	}

	rc, err := f.open()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	if f.Size > 0 {
		buf.Grow(int(f.Size))
	}
	chunk := make([]byte, readChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		n, err := rc.Read(chunk)
		buf.Write(chunk[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
	}

	return buf.Bytes(), nil
}

func baseMIMEType(s string) string {
	base, _, _ := strings.Cut(s, ";")
	return strings.TrimSpace(base)
}
