// Package tiktoken counts tokens for OpenAI models using tiktoken encodings.
package tiktoken

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/tokcount"
	"github.com/pkoukk/tiktoken-go"
)

// Encoding names.
const (
	EncodingO200kBase  = "o200k_base"
	EncodingCL100kBase = "cl100k_base"
	EncodingP50kBase   = "p50k_base"
	EncodingR50kBase   = "r50k_base"
)

// extraModelEncodings and extraPrefixEncodings cover models released after
// the tables shipped with tiktoken-go. Library entries take precedence.
var (
	extraModelEncodings = map[string]string{
		"gpt-4.1":      EncodingO200kBase,
		"gpt-4.1-mini": EncodingO200kBase,
		"gpt-4.1-nano": EncodingO200kBase,
		"o1":           EncodingO200kBase,
		"o1-mini":      EncodingO200kBase,
		"o3":           EncodingO200kBase,
		"o3-mini":      EncodingO200kBase,
		"o4-mini":      EncodingO200kBase,
	}
	extraPrefixEncodings = map[string]string{
		"gpt-4.1-":  EncodingO200kBase,
		"o1-":       EncodingO200kBase,
		"o3-":       EncodingO200kBase,
		"o4-mini-":  EncodingO200kBase,
		"ft:gpt-4o": EncodingO200kBase,
	}
)

var (
	modelEncodings       = merge(tiktoken.MODEL_TO_ENCODING, extraModelEncodings)
	modelPrefixEncodings = merge(tiktoken.MODEL_PREFIX_TO_ENCODING, extraPrefixEncodings)
)

func merge(base, extra map[string]string) map[string]string {
	m := make(map[string]string, len(base)+len(extra))
	for k, v := range extra {
		m[k] = v
	}
	for k, v := range base {
		m[k] = v
	}
	return m
}

// Model pairs a model identifier with the encoding it resolves to.
type Model struct {
	Name     string
	Encoding string
}

// Models returns the exactly known model identifiers sorted by name.
func Models() []Model {
	models := make([]Model, 0, len(modelEncodings))
	for name, encoding := range modelEncodings {
		models = append(models, Model{Name: name, Encoding: encoding})
	}
	sort.Slice(models, func(i, j int) bool {
		return models[i].Name < models[j].Name
	})
	return models
}

// EncodingForModel resolves a model identifier to an encoding name.
// Exact identifiers win over prefixes; among prefixes the longest wins.
// Returns ECONFIG if the model is unknown.
func EncodingForModel(model string) (string, error) {
	if encoding, ok := modelEncodings[model]; ok {
		return encoding, nil
	}

	var match, encoding string
	for prefix, enc := range modelPrefixEncodings {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(match) {
			match, encoding = prefix, enc
		}
	}
	if match == "" {
		return "", tokcount.Errorf(tokcount.ECONFIG, "no tiktoken encoding known for model %q", model)
	}
	return encoding, nil
}

var _ tokcount.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using a tiktoken encoding.
type TokenCounter struct {
	model    string
	encoding string
	enc      *tiktoken.Tiktoken
}

// NewTokenCounter creates a new TokenCounter for the given model.
// The encoding table is downloaded on first use and cached by tiktoken-go
// (see TIKTOKEN_CACHE_DIR).
func NewTokenCounter(model string) (*TokenCounter, error) {
	encoding, err := EncodingForModel(model)
	if err != nil {
		return nil, err
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encoding, err)
	}

	return &TokenCounter{model: model, encoding: encoding, enc: enc}, nil
}

// Model returns the model identifier the counter was created for.
func (tc *TokenCounter) Model() string { return tc.model }

// Encoding returns the name of the encoding backing the counter.
func (tc *TokenCounter) Encoding() string { return tc.encoding }

// Encode converts text to token identifiers in encoding order. Special
// token literals such as "<|endoftext|>" are encoded as ordinary text.
func (tc *TokenCounter) Encode(ctx context.Context, text string) ([]int, error) {
	if text == "" {
		return []int{}, nil
	}
	return tc.enc.Encode(text, nil, nil), nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	tokens, err := tc.Encode(ctx, text)
	if err != nil {
		return 0, err
	}
	return len(tokens), nil
}
