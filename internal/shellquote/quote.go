// Package shellquote renders argument vectors in a shell-like form for
// verbose command echoing. The output is cosmetic only and is never used to
// construct an actual command line.
package shellquote

import "strings"

// Join renders args as a single space-separated string. Any argument that
// contains a space is wrapped in double quotes; no other escaping is applied.
func Join(args []string) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		if strings.Contains(a, " ") {
			b.WriteByte('"')
			b.WriteString(a)
			b.WriteByte('"')
		} else {
			b.WriteString(a)
		}
	}
	return b.String()
}
