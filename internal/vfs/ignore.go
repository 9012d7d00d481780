package vfs

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignoreRules decides which paths VisitNotIgnoredFiles skips. Plain
// patterns match any single path segment (the common .gitignore case of a
// bare directory name); patterns containing glob characters or slashes
// are matched against the full slash-separated path with doublestar, so
// `**` works.
type ignoreRules struct {
	patterns []string
}

func defaultIgnoreRules() *ignoreRules {
	return &ignoreRules{patterns: []string{"node_modules", ".git", "dist", "tmp"}}
}

func (r *ignoreRules) add(patterns ...string) {
	for _, p := range patterns {
		p = strings.TrimSpace(strings.TrimSuffix(p, "/"))
		if p == "" || strings.HasPrefix(p, "#") || strings.HasPrefix(p, "!") {
			continue
		}
		r.patterns = append(r.patterns, p)
	}
}

func (r *ignoreRules) match(path string) bool {
	for _, pat := range r.patterns {
		if strings.ContainsAny(pat, "*?[{/") {
			if ok, err := doublestar.Match(pat, path); err == nil && ok {
				return true
			}
			continue
		}
		for _, seg := range strings.Split(path, "/") {
			if seg == pat {
				return true
			}
		}
	}
	return false
}
