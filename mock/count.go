package mock

import (
	"context"

	"github.com/fwojciec/tokcount"
)

var _ tokcount.CountService = (*CountService)(nil)

// CountService is a mock implementation of tokcount.CountService.
type CountService struct {
	CreateCountFn func(ctx context.Context, count *tokcount.Count) error
	FindCountsFn  func(ctx context.Context, filter tokcount.CountFilter) ([]*tokcount.Count, error)
}

func (s *CountService) CreateCount(ctx context.Context, count *tokcount.Count) error {
	return s.CreateCountFn(ctx, count)
}

func (s *CountService) FindCounts(ctx context.Context, filter tokcount.CountFilter) ([]*tokcount.Count, error) {
	return s.FindCountsFn(ctx, filter)
}
