// Package gemini counts tokens for Gemini models using the local tokenizer
// shipped with google.golang.org/genai.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/tokcount"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// ModelPrefix identifies model identifiers served by this package.
const ModelPrefix = "gemini-"

// IsModel reports whether model names a Gemini model.
func IsModel(model string) bool {
	return strings.HasPrefix(model, ModelPrefix)
}

var _ tokcount.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini tokenizer.
type TokenCounter struct {
	model string
	tok   *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
// Returns ECONFIG if the tokenizer cannot be created for the model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if !IsModel(model) {
		return nil, tokcount.Errorf(tokcount.ECONFIG, "model %q is not a Gemini model", model)
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, tokcount.Errorf(tokcount.ECONFIG, "no Gemini tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the model identifier the counter was created for.
func (tc *TokenCounter) Model() string { return tc.model }

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
