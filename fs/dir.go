package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fwojciec/tokcount"
	"golang.org/x/sync/errgroup"
)

// Tree drawing elements.
const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	indent     = "    "
)

// skipDir is the directory left out of trees and prompts.
const skipDir = ".git"

// Ensure DirReader implements tokcount.DirectoryReader at compile time.
var _ tokcount.DirectoryReader = (*DirReader)(nil)

// DirReader reads a directory tree from the local filesystem.
type DirReader struct {
	// Concurrency limits parallel file reads. Defaults to runtime.NumCPU().
	Concurrency int

	// Exclude lists files left out of ReadFiles, such as the prompt
	// being written.
	Exclude []string

	// OnSkip is called for files and directories that could not be read.
	OnSkip func(path string, err error)
}

// NewDirReader creates a new DirReader with default concurrency.
func NewDirReader() *DirReader {
	return &DirReader{}
}

// Tree renders the hierarchy under root, one entry per line, sorted by name.
// Directories are suffixed with a slash. A symbolic link given as root is
// resolved; links inside the tree are listed but not followed.
func (r *DirReader) Tree(ctx context.Context, root string) (string, error) {
	base, err := resolveRoot(root)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := writeTree(ctx, &b, base, "", r.excluded()); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeTree(ctx context.Context, b *strings.Builder, dir, prefix string, excluded map[string]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	visible := entries[:0]
	for _, e := range entries {
		if e.Name() != skipDir && !excluded[filepath.Join(dir, e.Name())] {
			visible = append(visible, e)
		}
	}

	for i, e := range visible {
		last := i == len(visible)-1
		connector, next := branch, pipe
		if last {
			connector, next = lastBranch, indent
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(e.Name())
		if !e.IsDir() {
			b.WriteString("\n")
			continue
		}
		b.WriteString("/\n")
		if err := writeTree(ctx, b, filepath.Join(dir, e.Name()), prefix+next, excluded); err != nil {
			return err
		}
	}
	return nil
}

// ReadFiles returns the text files under root sorted by path. Files inside
// .git directories, binary files and excluded files are left out. Files
// that cannot be read are reported to OnSkip and left out.
func (r *DirReader) ReadFiles(ctx context.Context, root string) ([]*tokcount.File, error) {
	base, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	paths, err := r.walk(base, r.excluded())
	if err != nil {
		return nil, err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	files := make([]*tokcount.File, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				r.skip(path, err)
				return nil
			}
			if tokcount.IsBinary(data) {
				return nil
			}

			rel, err := filepath.Rel(base, path)
			if err != nil {
				r.skip(path, err)
				return nil
			}

			files[i] = &tokcount.File{
				Path:    filepath.ToSlash(rel),
				Content: tokcount.DecodeText(data),
				Size:    len(data),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Compact in place, keeping walk order.
	out := files[:0]
	for _, f := range files {
		if f != nil {
			out = append(out, f)
		}
	}
	return out, nil
}

// walk returns regular file paths under root in lexical order.
func (r *DirReader) walk(root string, excluded map[string]bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			r.skip(path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if d.Name() == skipDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || excluded[path] {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}
	return paths, nil
}

// excluded returns the Exclude paths in the resolved form used by Tree
// and walk.
func (r *DirReader) excluded() map[string]bool {
	m := make(map[string]bool, len(r.Exclude))
	for _, p := range r.Exclude {
		m[resolvePath(p)] = true
	}
	return m
}

func (r *DirReader) skip(path string, err error) {
	if r.OnSkip != nil {
		r.OnSkip(path, err)
	}
}

// resolveRoot checks that root is a directory and returns it as an
// absolute path with symbolic links resolved.
func resolveRoot(root string) (string, error) {
	if err := checkDir(root); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", root, err)
	}
	base, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", root, err)
	}
	return base, nil
}

// resolvePath returns path as an absolute path with symbolic links
// resolved. A file that does not exist yet is resolved through its
// parent directory.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		return filepath.Join(dir, filepath.Base(abs))
	}
	return abs
}

func checkDir(root string) error {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return tokcount.Errorf(tokcount.EINVALID, "%q does not exist", root)
	} else if err != nil {
		return fmt.Errorf("failed to stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return tokcount.Errorf(tokcount.EINVALID, "%q is not a directory", root)
	}
	return nil
}
