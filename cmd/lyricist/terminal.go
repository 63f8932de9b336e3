package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

var errNotTerminal = errors.New("output is not a terminal")

// osc52Clipboard copies text through the terminal with an OSC 52 sequence,
// which also works over SSH.
type osc52Clipboard struct {
	w          io.Writer
	isTerminal func() bool
}

func newTerminalClipboard(f *os.File) *osc52Clipboard {
	return &osc52Clipboard{
		w:          f,
		isTerminal: func() bool { return term.IsTerminal(int(f.Fd())) },
	}
}

func (c *osc52Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.isTerminal() {
		return errNotTerminal
	}
	_, err := fmt.Fprintf(c.w, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// fileDownloader saves artifacts into a directory.
type fileDownloader struct {
	dir string
	// saved is the path of the last artifact written.
	saved string
}

func (d *fileDownloader) Download(filename, _ string, data []byte) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(d.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	d.saved = path
	return nil
}

// printRevealer shows new lyrics on the output.
type printRevealer struct {
	w io.Writer
}

func (r *printRevealer) Reveal(lyrics string) {
	fmt.Fprintln(r.w, lyrics)
}
