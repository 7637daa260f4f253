// Package tokcount counts the tokens a language model would see for a text
// file. It reads files leniently, resolves a model identifier to a tokenizer
// encoding, and reports the number of tokens. It can also pack a directory
// into a single prompt file and keep a history of past counts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., tiktoken/, gemini/, sqlite/).
package tokcount

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "gpt-4o"

// DefaultPromptFile is the file counted when no path is given.
const DefaultPromptFile = "prompt.txt"
