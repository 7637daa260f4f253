package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tokcount"
)

// Ensure LoggingDirectoryReader implements tokcount.DirectoryReader.
var _ tokcount.DirectoryReader = (*LoggingDirectoryReader)(nil)

// LoggingDirectoryReader wraps a DirectoryReader with debug logging.
type LoggingDirectoryReader struct {
	next   tokcount.DirectoryReader
	logger *slog.Logger
}

// NewLoggingDirectoryReader creates a new LoggingDirectoryReader.
func NewLoggingDirectoryReader(next tokcount.DirectoryReader, logger *slog.Logger) *LoggingDirectoryReader {
	return &LoggingDirectoryReader{next: next, logger: logger}
}

// Tree delegates to the wrapped reader and logs the operation.
func (r *LoggingDirectoryReader) Tree(ctx context.Context, root string) (tree string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render tree",
			"root", root,
			"bytes", len(tree),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Tree(ctx, root)
}

// ReadFiles delegates to the wrapped reader and logs the operation.
func (r *LoggingDirectoryReader) ReadFiles(ctx context.Context, root string) (files []*tokcount.File, err error) {
	defer func(begin time.Time) {
		size := 0
		for _, f := range files {
			size += f.Size
		}
		r.logger.Info("read files",
			"root", root,
			"count", len(files),
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadFiles(ctx, root)
}
