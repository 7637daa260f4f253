// Package fs provides file-based reading and writing of prompt text.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/tokcount"
)

// Ensure TextReader implements tokcount.FileReader at compile time.
var _ tokcount.FileReader = (*TextReader)(nil)

// TextReader reads files from the local filesystem as text.
type TextReader struct{}

// NewTextReader creates a new TextReader.
func NewTextReader() *TextReader {
	return &TextReader{}
}

// ReadText reads the whole file at path and decodes it with
// tokcount.DecodeText, so malformed UTF-8 never fails the read.
func (r *TextReader) ReadText(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", tokcount.Errorf(tokcount.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return "", tokcount.Errorf(tokcount.EINVALID, "%q is a directory", path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}

	return tokcount.DecodeText(data), nil
}
