package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/fwojciec/tokcount"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Model  string

	Counter tokcount.TokenCounter
	Files   tokcount.FileReader
	Dirs    tokcount.DirectoryReader
	Writer  tokcount.PromptWriter

	// Counts is nil when history is disabled or unavailable.
	Counts tokcount.CountService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Model     string `short:"m" default:"${model}" env:"TOKCOUNT_MODEL" help:"Model whose tokenizer is used"`
	NoHistory bool   `help:"Neither record nor reuse previous counts"`
	Debug     bool   `help:"Log operations to stderr"`

	Count   CountCmd   `cmd:"" default:"withargs" help:"Count tokens in a file (default command)"`
	Prompt  PromptCmd  `cmd:"" help:"Pack a directory into a prompt file and count its tokens"`
	History HistoryCmd `cmd:"" help:"List recorded token counts"`
	Models  ModelsCmd  `cmd:"" help:"List known model identifiers"`
}

// CountCmd is the "count" subcommand. Special token literals such as
// "<|endoftext|>" in the file are counted as ordinary text.
type CountCmd struct {
	Path string `arg:"" optional:"" default:"${prompt}" help:"File to count"`
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct {
	Dir         string `arg:"" help:"Directory to pack"`
	Output      string `short:"o" help:"Prompt file path (default: prompt.txt next to the directory)"`
	Concurrency int    `short:"c" help:"Concurrent file reads (default: number of CPUs)"`
}

// OutputPath returns where the prompt is written. By default the prompt
// is placed next to the packed directory.
func (c *PromptCmd) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		dir = filepath.Clean(c.Dir)
	}
	return filepath.Join(filepath.Dir(dir), tokcount.DefaultPromptFile)
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Path  string `arg:"" optional:"" help:"Only show counts for this file"`
	Limit int    `short:"n" default:"20" help:"Maximum number of counts to show"`
}

// ModelsCmd is the "models" subcommand.
type ModelsCmd struct{}
