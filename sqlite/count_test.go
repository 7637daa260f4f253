package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashContent(t *testing.T) {
	t.Parallel()

	a := sqlite.HashContent("Hello, world!")

	assert.Len(t, a, 16)
	assert.Equal(t, a, sqlite.HashContent("Hello, world!"))
	assert.NotEqual(t, a, sqlite.HashContent("Hello, world?"))
	assert.Equal(t, "ef46db3751d8e999", sqlite.HashContent(""))
}

func TestCountService_CreateCount(t *testing.T) {
	t.Parallel()

	t.Run("creates count with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCountService(db)
		ctx := context.Background()

		c := &tokcount.Count{
			Path:        "prompt.txt",
			Model:       "gpt-4o",
			Tokens:      4,
			Bytes:       13,
			ContentHash: sqlite.HashContent("Hello, world!"),
		}

		err := svc.CreateCount(ctx, c)
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID, "ID should be generated")
		assert.False(t, c.CountedAt.IsZero(), "CountedAt should be set")
		assert.Equal(t, time.UTC, c.CountedAt.Location())
	})

	t.Run("returns error for invalid count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCountService(db)

		err := svc.CreateCount(context.Background(), &tokcount.Count{})

		require.Error(t, err)
		assert.Equal(t, tokcount.EINVALID, tokcount.ErrorCode(err))
	})

	t.Run("round trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewCountService(db)
		ctx := context.Background()

		at := time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)
		c := &tokcount.Count{
			Path:        "/tmp/prompt.txt",
			Model:       "gpt-4",
			Tokens:      1234,
			Bytes:       5678,
			ContentHash: "abcdef0123456789",
			CountedAt:   at,
		}
		require.NoError(t, svc.CreateCount(ctx, c))

		counts, err := svc.FindCounts(ctx, tokcount.CountFilter{})
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, c, counts[0])
	})
}

func TestCountService_FindCounts(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.CountService) {
		t.Helper()
		base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			model := "gpt-4o"
			if i%2 == 1 {
				model = "gpt-4"
			}
			require.NoError(t, svc.CreateCount(context.Background(), &tokcount.Count{
				Path:        fmt.Sprintf("file%d.txt", i),
				Model:       model,
				Tokens:      i * 10,
				ContentHash: fmt.Sprintf("hash%d", i%3),
				CountedAt:   base.Add(time.Duration(i) * time.Minute),
			}))
		}
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCountService(setupTestDB(t))
		seed(t, svc)

		counts, err := svc.FindCounts(context.Background(), tokcount.CountFilter{})

		require.NoError(t, err)
		require.Len(t, counts, 5)
		assert.Equal(t, "file4.txt", counts[0].Path)
		assert.Equal(t, "file0.txt", counts[4].Path)
	})

	t.Run("filters by path", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCountService(setupTestDB(t))
		seed(t, svc)

		path := "file2.txt"
		counts, err := svc.FindCounts(context.Background(), tokcount.CountFilter{Path: &path})

		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, 20, counts[0].Tokens)
	})

	t.Run("filters by content hash and model", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCountService(setupTestDB(t))
		seed(t, svc)

		hash, model := "hash0", "gpt-4"
		counts, err := svc.FindCounts(context.Background(), tokcount.CountFilter{
			ContentHash: &hash,
			Model:       &model,
		})

		// hash0 is used by i=0 (gpt-4o) and i=3 (gpt-4)
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, "file3.txt", counts[0].Path)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCountService(setupTestDB(t))
		seed(t, svc)

		counts, err := svc.FindCounts(context.Background(), tokcount.CountFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, "file3.txt", counts[0].Path)
		assert.Equal(t, "file2.txt", counts[1].Path)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCountService(setupTestDB(t))
		seed(t, svc)

		counts, err := svc.FindCounts(context.Background(), tokcount.CountFilter{Offset: 3})

		require.NoError(t, err)
		assert.Len(t, counts, 2)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCountService(setupTestDB(t))

		path := "missing.txt"
		counts, err := svc.FindCounts(context.Background(), tokcount.CountFilter{Path: &path})

		require.NoError(t, err)
		assert.Empty(t, counts)
	})
}
