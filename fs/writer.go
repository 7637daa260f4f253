package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/tokcount"
)

// Ensure Writer implements tokcount.PromptWriter at compile time.
var _ tokcount.PromptWriter = (*Writer)(nil)

// Writer writes prompt files with atomic replace semantics.
// Content is written to a temporary file next to the target, then renamed.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WritePrompt writes content to path, creating parent directories.
// An existing file at path is replaced only once the write has succeeded.
func (w *Writer) WritePrompt(ctx context.Context, path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
