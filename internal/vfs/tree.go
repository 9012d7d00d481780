// Package vfs provides the virtual file tree the migration engine operates
// on. All paths are slash-separated and relative to the tree root. Changes
// are staged in memory and journaled, so a caller can inspect or discard
// everything before touching the real filesystem.
package vfs

import "errors"

// ErrNotExist is returned when a read, rename, or delete names a path that
// is not in the tree.
var ErrNotExist = errors.New("path does not exist in tree")

// Tree is the contract the migration engine depends on.
type Tree interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool

	// Read returns the content of the file at path.
	Read(path string) (string, error)

	// Write creates or replaces the file at path.
	Write(path, content string) error

	// Delete removes the file or directory (recursively) at path.
	Delete(path string) error

	// Rename moves a single file. Directories must be migrated
	// file-by-file. Renaming a file onto its own path is a no-op.
	Rename(oldPath, newPath string) error

	// Children returns the names of the immediate entries under the
	// directory at path, sorted.
	Children(path string) ([]string, error)

	// VisitNotIgnoredFiles calls visit for every non-ignored file under
	// root, in deterministic order, over a snapshot taken at call time.
	// Visitation stops at the first error.
	VisitNotIgnoredFiles(root string, visit func(path string) error) error
}
