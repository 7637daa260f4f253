package tokcount

import "context"

// File is a text file collected into a prompt.
type File struct {
	// Path relative to the collected directory, slash separated.
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int    `json:"size"`
}

// FileReader reads a file as text.
type FileReader interface {
	// ReadText returns the decoded contents of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadText(ctx context.Context, path string) (string, error)
}

// DirectoryReader reads a directory for packing into a prompt.
type DirectoryReader interface {
	// Tree renders the directory hierarchy under root.
	// Returns EINVALID if root is not a directory.
	Tree(ctx context.Context, root string) (string, error)

	// ReadFiles returns the text files under root sorted by path.
	// Binary and unreadable files are skipped.
	ReadFiles(ctx context.Context, root string) ([]*File, error)
}

// PromptWriter persists a packed prompt.
type PromptWriter interface {
	WritePrompt(ctx context.Context, path, content string) error
}
