package main

import (
	"fmt"

	"github.com/fwojciec/tokcount/gemini"
	"github.com/fwojciec/tokcount/tiktoken"
)

// Run executes the models command.
func (c *ModelsCmd) Run(deps *Dependencies) error {
	for _, m := range tiktoken.Models() {
		fmt.Fprintf(deps.Stdout, "%-24s %s\n", m.Name, m.Encoding)
	}
	fmt.Fprintf(deps.Stdout, "%-24s %s\n", gemini.ModelPrefix+"*", "gemini local tokenizer")
	return nil
}
