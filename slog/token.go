// Package slog provides logging decorators for tokcount services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tokcount"
)

// Ensure LoggingTokenCounter implements tokcount.TokenCounter.
var _ tokcount.TokenCounter = (*LoggingTokenCounter)(nil)

// LoggingTokenCounter wraps a TokenCounter with debug logging.
type LoggingTokenCounter struct {
	next   tokcount.TokenCounter
	model  string
	logger *slog.Logger
}

// NewLoggingTokenCounter creates a new LoggingTokenCounter.
func NewLoggingTokenCounter(next tokcount.TokenCounter, model string, logger *slog.Logger) *LoggingTokenCounter {
	return &LoggingTokenCounter{next: next, model: model, logger: logger}
}

// CountTokens delegates to the wrapped counter and logs the operation.
func (tc *LoggingTokenCounter) CountTokens(ctx context.Context, text string) (tokens int, err error) {
	defer func(begin time.Time) {
		tc.logger.Info("count tokens",
			"model", tc.model,
			"bytes", len(text),
			"tokens", tokens,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return tc.next.CountTokens(ctx, text)
}
