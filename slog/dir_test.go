package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/mock"
	tokslog "github.com/fwojciec/tokcount/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDirectoryReader(t *testing.T) {
	t.Parallel()

	t.Run("logs tree rendering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DirectoryReader{
			TreeFn: func(ctx context.Context, root string) (string, error) {
				return "└── a.txt\n", nil
			},
		}

		reader := tokslog.NewLoggingDirectoryReader(inner, logger)
		tree, err := reader.Tree(context.Background(), "/src")

		require.NoError(t, err)
		assert.Equal(t, "└── a.txt\n", tree)
		output := buf.String()
		assert.Contains(t, output, "render tree")
		assert.Contains(t, output, "root=/src")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs file count and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DirectoryReader{
			ReadFilesFn: func(ctx context.Context, root string) ([]*tokcount.File, error) {
				return []*tokcount.File{
					{Path: "a.txt", Content: "abc", Size: 3},
					{Path: "b.txt", Content: "de", Size: 2},
				}, nil
			},
		}

		reader := tokslog.NewLoggingDirectoryReader(inner, logger)
		files, err := reader.ReadFiles(context.Background(), "/src")

		require.NoError(t, err)
		assert.Len(t, files, 2)
		output := buf.String()
		assert.Contains(t, output, "read files")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "bytes=5")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DirectoryReader{
			ReadFilesFn: func(ctx context.Context, root string) ([]*tokcount.File, error) {
				return nil, errors.New("walk failed")
			},
		}

		reader := tokslog.NewLoggingDirectoryReader(inner, logger)
		_, err := reader.ReadFiles(context.Background(), "/src")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"walk failed\"")
	})
}
