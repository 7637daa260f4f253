package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tokcount"
)

// Run executes the prompt command.
func (c *PromptCmd) Run(deps *Dependencies) error {
	tree, err := deps.Dirs.Tree(deps.Ctx, c.Dir)
	if err != nil {
		return err
	}

	files, err := deps.Dirs.ReadFiles(deps.Ctx, c.Dir)
	if err != nil {
		return err
	}

	output := c.OutputPath()
	if err := deps.Writer.WritePrompt(deps.Ctx, output, tokcount.FormatPrompt(tree, files)); err != nil {
		return fmt.Errorf("failed to write %q: %w", output, err)
	}
	fmt.Fprintf(deps.Stdout, "%s has been created at %s\n", filepath.Base(output), output)

	// Count what was written, exactly as the count command would.
	text, err := deps.Files.ReadText(deps.Ctx, output)
	if err != nil {
		return err
	}

	tokens, err := countTokens(deps, output, text)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, tokcount.FormatCount(tokens))
	return nil
}
