// Package fs provides file system adapters for hashing artifacts and merging directory trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// Entry is one node of a walked tree.
type Entry struct {
	// Path is the absolute path of the node.
	Path string

	// Rel is the path relative to the walk root.
	Rel string

	// Dir is the directory entry, describing the node itself rather than a symlink's target.
	Dir fs.DirEntry
}

// Walker provides tree walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every node below root in lexical order, parents before children.
// The root itself is not yielded. Top-level entries named in skip are left out with
// everything below them. A walk error is yielded once and ends the walk.
func (w *Walker) Walk(root string, skip []string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield(Entry{Path: path}, err)
				return filepath.SkipAll
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				yield(Entry{Path: path}, relErr)
				return filepath.SkipAll
			}
			if rel == "." {
				return nil
			}

			if w.skipped(rel, skip) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(Entry{Path: path, Rel: rel, Dir: d}, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// skipped reports whether rel is a top-level entry named in skip.
func (w *Walker) skipped(rel string, skip []string) bool {
	return !strings.ContainsRune(rel, filepath.Separator) && slices.Contains(skip, rel)
}
