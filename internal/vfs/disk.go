package vfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir reads a directory from disk into a new MemTree. Ignored
// directories are skipped entirely, and a top-level .gitignore
// contributes extra ignore patterns. Loading does not journal: the
// journal records only mutations made after the snapshot.
func LoadDir(dir string) (*MemTree, error) {
	t := NewMemTree()

	if data, err := os.ReadFile(filepath.Join(dir, ".gitignore")); err == nil {
		t.AddIgnorePatterns(strings.Split(string(data), "\n")...)
	}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if t.ignore.match(rel) {
				return fs.SkipDir
			}
			t.dirs[rel] = true
			return nil
		}
		if t.ignore.match(rel) {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("loading %s: %w", rel, err)
		}
		t.files[rel] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Flush applies the journaled changes to the directory the tree was
// loaded from, in journal order. Partially applied flushes are not rolled
// back; callers wanting atomicity should flush into a scratch copy.
func (t *MemTree) Flush(dir string) error {
	for _, c := range t.journal {
		switch c.Op {
		case OpCreate, OpUpdate:
			target := filepath.Join(dir, filepath.FromSlash(c.Path))
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("flushing %s: %w", c.Path, err)
			}
			if err := os.WriteFile(target, []byte(t.files[c.Path]), 0644); err != nil {
				return fmt.Errorf("flushing %s: %w", c.Path, err)
			}
		case OpDelete:
			if err := os.RemoveAll(filepath.Join(dir, filepath.FromSlash(c.Path))); err != nil {
				return fmt.Errorf("flushing delete of %s: %w", c.Path, err)
			}
		case OpRename:
			from := filepath.Join(dir, filepath.FromSlash(c.Path))
			to := filepath.Join(dir, filepath.FromSlash(c.To))
			if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
				return fmt.Errorf("flushing rename to %s: %w", c.To, err)
			}
			if err := os.Rename(from, to); err != nil {
				return fmt.Errorf("flushing rename of %s: %w", c.Path, err)
			}
		}
	}
	return nil
}
