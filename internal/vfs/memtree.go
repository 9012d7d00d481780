package vfs

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// ChangeOp identifies a journaled mutation.
type ChangeOp string

const (
	OpCreate ChangeOp = "create"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
	OpRename ChangeOp = "rename"
)

// Change is one journal entry. To is set only for renames.
type Change struct {
	Op   ChangeOp
	Path string
	To   string
}

// MemTree is an in-memory Tree implementation with a change journal.
// Directories exist implicitly as file ancestors but are tracked
// explicitly too, so a directory whose last file was moved away is still
// visible (and deletable) as an empty directory.
type MemTree struct {
	files   map[string]string
	dirs    map[string]bool
	ignore  *ignoreRules
	journal []Change
}

// NewMemTree returns an empty tree with the default ignore rules.
func NewMemTree() *MemTree {
	return &MemTree{
		files:  make(map[string]string),
		dirs:   make(map[string]bool),
		ignore: defaultIgnoreRules(),
	}
}

// AddIgnorePatterns appends patterns to the tree's ignore rules. Plain
// names match any path segment; patterns with glob characters or slashes
// are matched against the whole path.
func (t *MemTree) AddIgnorePatterns(patterns ...string) {
	t.ignore.add(patterns...)
}

func normalize(p string) string {
	p = path.Clean(strings.TrimPrefix(p, "/"))
	if p == "." {
		return ""
	}
	return p
}

// Exists reports whether p names a file or directory in the tree.
func (t *MemTree) Exists(p string) bool {
	p = normalize(p)
	if p == "" {
		return true
	}
	if _, ok := t.files[p]; ok {
		return true
	}
	if t.dirs[p] {
		return true
	}
	prefix := p + "/"
	for fp := range t.files {
		if strings.HasPrefix(fp, prefix) {
			return true
		}
	}
	return false
}

// Read returns the content of the file at p.
func (t *MemTree) Read(p string) (string, error) {
	p = normalize(p)
	content, ok := t.files[p]
	if !ok {
		return "", fmt.Errorf("reading %s: %w", p, ErrNotExist)
	}
	return content, nil
}

// Write creates or replaces the file at p, creating parent directories.
func (t *MemTree) Write(p, content string) error {
	p = normalize(p)
	if p == "" || t.dirs[p] {
		return fmt.Errorf("writing %s: path is a directory", p)
	}
	op := OpCreate
	if _, ok := t.files[p]; ok {
		op = OpUpdate
	}
	t.files[p] = content
	t.mkdirAll(path.Dir(p))
	t.journal = append(t.journal, Change{Op: op, Path: p})
	return nil
}

// Delete removes the file at p, or the directory at p with everything
// under it.
func (t *MemTree) Delete(p string) error {
	p = normalize(p)
	if !t.Exists(p) {
		return fmt.Errorf("deleting %s: %w", p, ErrNotExist)
	}
	delete(t.files, p)
	prefix := p + "/"
	for fp := range t.files {
		if strings.HasPrefix(fp, prefix) {
			delete(t.files, fp)
		}
	}
	for dp := range t.dirs {
		if dp == p || strings.HasPrefix(dp, prefix) {
			delete(t.dirs, dp)
		}
	}
	t.journal = append(t.journal, Change{Op: OpDelete, Path: p})
	return nil
}

// Rename moves the file at oldPath to newPath. A same-path rename is a
// no-op; renaming a directory is an error.
func (t *MemTree) Rename(oldPath, newPath string) error {
	oldPath = normalize(oldPath)
	newPath = normalize(newPath)
	if oldPath == newPath {
		return nil
	}
	content, ok := t.files[oldPath]
	if !ok {
		if t.dirs[oldPath] {
			return fmt.Errorf("renaming %s: directories must be migrated file-by-file", oldPath)
		}
		return fmt.Errorf("renaming %s: %w", oldPath, ErrNotExist)
	}
	delete(t.files, oldPath)
	t.files[newPath] = content
	t.mkdirAll(path.Dir(newPath))
	// The old parent stays behind as an explicit (possibly empty) dir.
	t.mkdirAll(path.Dir(oldPath))
	t.journal = append(t.journal, Change{Op: OpRename, Path: oldPath, To: newPath})
	return nil
}

// Children returns the sorted names of the immediate entries under p.
func (t *MemTree) Children(p string) ([]string, error) {
	p = normalize(p)
	if p != "" && !t.Exists(p) {
		return nil, fmt.Errorf("listing %s: %w", p, ErrNotExist)
	}
	seen := make(map[string]bool)
	prefix := ""
	if p != "" {
		prefix = p + "/"
	}
	collect := func(entry string) {
		if !strings.HasPrefix(entry, prefix) || entry == p {
			return
		}
		rest := strings.TrimPrefix(entry, prefix)
		name, _, _ := strings.Cut(rest, "/")
		seen[name] = true
	}
	for fp := range t.files {
		collect(fp)
	}
	for dp := range t.dirs {
		collect(dp)
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// VisitNotIgnoredFiles calls visit for every non-ignored file under root
// in sorted path order, over a snapshot of the tree taken at call time.
func (t *MemTree) VisitNotIgnoredFiles(root string, visit func(path string) error) error {
	root = normalize(root)
	prefix := ""
	if root != "" {
		prefix = root + "/"
	}
	paths := make([]string, 0, len(t.files))
	for fp := range t.files {
		if prefix != "" && !strings.HasPrefix(fp, prefix) {
			continue
		}
		if t.ignore.match(fp) {
			continue
		}
		paths = append(paths, fp)
	}
	sort.Strings(paths)
	for _, fp := range paths {
		if err := visit(fp); err != nil {
			return err
		}
	}
	return nil
}

// Journal returns the mutations applied so far, in order.
func (t *MemTree) Journal() []Change {
	return t.journal
}

// ResetJournal discards the journal, turning the current contents into
// the baseline. Used after seeding fixtures.
func (t *MemTree) ResetJournal() {
	t.journal = nil
}

func (t *MemTree) mkdirAll(dir string) {
	for dir != "" && dir != "." {
		t.dirs[dir] = true
		dir = path.Dir(dir)
		if dir == "." {
			break
		}
	}
}
