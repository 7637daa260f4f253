package tokcount

import (
	"fmt"
	"strings"
)

// FormatCount formats a token count as printed by the count command.
func FormatCount(tokens int) string {
	return fmt.Sprintf("Number of tokens: %d", tokens)
}

// FormatBytes formats byte count in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatPrompt packs a directory tree and file contents into a single prompt.
// The tree comes first, followed by a blank line and each file as a fenced
// block headed by its path.
func FormatPrompt(tree string, files []*File) string {
	var b strings.Builder
	b.WriteString(tree)
	b.WriteString("\n")
	for _, f := range files {
		b.WriteString(f.Path)
		b.WriteString("```\n")
		b.WriteString(f.Content)
		b.WriteString("\n```\n\n")
	}
	return b.String()
}
