package tokcount

import (
	"context"
	"time"
)

// Count records the token count of a file for a model.
type Count struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Model       string    `json:"model"`
	Tokens      int       `json:"tokens"`
	Bytes       int       `json:"bytes"`
	ContentHash string    `json:"contentHash"`
	CountedAt   time.Time `json:"countedAt"`
}

// Validate returns an error if the count contains invalid fields.
func (c *Count) Validate() error {
	if c.Path == "" {
		return Errorf(EINVALID, "count path required")
	}
	if c.Model == "" {
		return Errorf(EINVALID, "count model required")
	}
	if c.Tokens < 0 {
		return Errorf(EINVALID, "count tokens must not be negative")
	}
	return nil
}

// CountService represents a service for recording token counts.
type CountService interface {
	// CreateCount records a new count.
	CreateCount(ctx context.Context, count *Count) error

	// FindCounts retrieves counts matching the filter, newest first.
	FindCounts(ctx context.Context, filter CountFilter) ([]*Count, error)
}

// CountFilter represents a filter for FindCounts.
type CountFilter struct {
	Path        *string `json:"path"`
	Model       *string `json:"model"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
