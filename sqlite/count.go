package sqlite

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tokcount"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tokcount.CountService = (*CountService)(nil)

// CountService implements tokcount.CountService using SQLite.
type CountService struct {
	db *DB
}

// NewCountService creates a new CountService.
func NewCountService(db *DB) *CountService {
	return &CountService{db: db}
}

// HashContent computes xxHash of content and returns hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateCount records a new count.
func (s *CountService) CreateCount(ctx context.Context, count *tokcount.Count) error {
	if err := count.Validate(); err != nil {
		return err
	}

	count.ID = uuid.New().String()
	if count.CountedAt.IsZero() {
		count.CountedAt = time.Now()
	}
	count.CountedAt = count.CountedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO counts (id, path, model, tokens, bytes, content_hash, counted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, count.ID, count.Path, count.Model, count.Tokens, count.Bytes, count.ContentHash,
		formatTime(count.CountedAt))

	return err
}

// FindCounts retrieves counts matching the filter, newest first.
func (s *CountService) FindCounts(ctx context.Context, filter tokcount.CountFilter) ([]*tokcount.Count, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, path, model, tokens, bytes, content_hash, counted_at FROM counts WHERE 1=1")

	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.Model != nil {
		query.WriteString(" AND model = ?")
		args = append(args, *filter.Model)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY counted_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*tokcount.Count
	for rows.Next() {
		var c tokcount.Count
		var countedAt string

		if err := rows.Scan(&c.ID, &c.Path, &c.Model, &c.Tokens, &c.Bytes, &c.ContentHash, &countedAt); err != nil {
			return nil, err
		}

		if c.CountedAt, err = parseTime(countedAt, "counted_at"); err != nil {
			return nil, err
		}

		counts = append(counts, &c)
	}

	return counts, rows.Err()
}
