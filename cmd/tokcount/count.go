package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/sqlite"
)

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	text, err := deps.Files.ReadText(deps.Ctx, c.Path)
	if err != nil {
		return err
	}

	tokens, err := countTokens(deps, c.Path, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, tokcount.FormatCount(tokens))
	return nil
}

// countTokens counts text read from path. With history enabled, a previous
// count of identical content for the same model is reused and the result
// is recorded. History failures are reported as warnings only.
func countTokens(deps *Dependencies, path, text string) (int, error) {
	if deps.Counts == nil {
		return deps.Counter.CountTokens(deps.Ctx, text)
	}

	hash := sqlite.HashContent(text)

	tokens := -1
	cached, err := deps.Counts.FindCounts(deps.Ctx, tokcount.CountFilter{
		ContentHash: &hash,
		Model:       &deps.Model,
		Limit:       1,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to look up history: %v\n", err)
	} else if len(cached) > 0 {
		tokens = cached[0].Tokens
	}

	if tokens < 0 {
		tokens, err = deps.Counter.CountTokens(deps.Ctx, text)
		if err != nil {
			return 0, err
		}
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := deps.Counts.CreateCount(deps.Ctx, &tokcount.Count{
		Path:        path,
		Model:       deps.Model,
		Tokens:      tokens,
		Bytes:       len(text),
		ContentHash: hash,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: failed to record count: %v\n", err)
	}

	return tokens, nil
}
