package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tokcount"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Counts == nil {
		return tokcount.Errorf(tokcount.EINVALID, "history is disabled")
	}

	filter := tokcount.CountFilter{Limit: c.Limit}
	if c.Path != "" {
		path := c.Path
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		filter.Path = &path
	}

	counts, err := deps.Counts.FindCounts(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "No counts recorded yet. Use 'tokcount count <file>' to count a file.")
		return nil
	}

	for _, cnt := range counts {
		fmt.Fprintf(deps.Stdout, "%s  %-16s %8d tokens  %9s  %s\n",
			cnt.CountedAt.Local().Format("2006-01-02 15:04"),
			cnt.Model,
			cnt.Tokens,
			tokcount.FormatBytes(cnt.Bytes),
			cnt.Path,
		)
	}
	return nil
}
