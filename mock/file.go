package mock

import (
	"context"

	"github.com/fwojciec/tokcount"
)

var _ tokcount.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of tokcount.FileReader.
type FileReader struct {
	ReadTextFn func(ctx context.Context, path string) (string, error)
}

func (r *FileReader) ReadText(ctx context.Context, path string) (string, error) {
	return r.ReadTextFn(ctx, path)
}

var _ tokcount.DirectoryReader = (*DirectoryReader)(nil)

// DirectoryReader is a mock implementation of tokcount.DirectoryReader.
type DirectoryReader struct {
	TreeFn      func(ctx context.Context, root string) (string, error)
	ReadFilesFn func(ctx context.Context, root string) ([]*tokcount.File, error)
}

func (r *DirectoryReader) Tree(ctx context.Context, root string) (string, error) {
	return r.TreeFn(ctx, root)
}

func (r *DirectoryReader) ReadFiles(ctx context.Context, root string) ([]*tokcount.File, error) {
	return r.ReadFilesFn(ctx, root)
}

var _ tokcount.PromptWriter = (*PromptWriter)(nil)

// PromptWriter is a mock implementation of tokcount.PromptWriter.
type PromptWriter struct {
	WritePromptFn func(ctx context.Context, path, content string) error
}

func (w *PromptWriter) WritePrompt(ctx context.Context, path, content string) error {
	return w.WritePromptFn(ctx, path, content)
}
