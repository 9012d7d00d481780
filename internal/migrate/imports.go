package migrate

import "strings"

// RewriteImports scans content as JS/TS source and rewrites every string
// literal whose value ends with oldLeaf so that the matched suffix
// becomes newLeaf. Everything before the suffix is preserved, so
// '../support' becomes '../support/e2e' when the leaves are "support"
// and "support/e2e". The rewrite is purely textual inside the matched
// literals; the resulting path is not re-resolved.
//
// Single-, double-, and backtick-quoted literals are recognized, with
// backslash escapes honored. Line and block comments are skipped so a
// quote character inside a comment cannot derail the scan.
func RewriteImports(content, oldLeaf, newLeaf string) string {
	if oldLeaf == "" || oldLeaf == newLeaf {
		return content
	}

	var b strings.Builder
	last := 0
	i := 0
	n := len(content)
	for i < n {
		switch c := content[i]; c {
		case '/':
			if i+1 < n && content[i+1] == '/' {
				for i < n && content[i] != '\n' {
					i++
				}
			} else if i+1 < n && content[i+1] == '*' {
				i += 2
				for i+1 < n && !(content[i] == '*' && content[i+1] == '/') {
					i++
				}
				i += 2
			} else {
				i++
			}
		case '\'', '"', '`':
			start := i + 1
			j := start
			for j < n && content[j] != c {
				if content[j] == '\\' {
					j++
				}
				j++
			}
			if j >= n {
				// Unterminated literal; leave the rest untouched.
				i = n
				break
			}
			if value := content[start:j]; strings.HasSuffix(value, oldLeaf) {
				b.WriteString(content[last:start])
				b.WriteString(strings.TrimSuffix(value, oldLeaf))
				b.WriteString(newLeaf)
				last = j
			}
			i = j + 1
		default:
			i++
		}
	}
	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}
