package optlist

import "strings"

// BaseName returns the suffix of path following the last occurrence of any
// of '\', '/' or ':'. All three count as separators regardless of
// platform, so DOS drive prefixes ("c:prog") are trimmed too. The input
// comes back unchanged when no separator occurs.
func BaseName(path string) string {
	last := -1
	for _, sep := range []byte{'\\', '/', ':'} {
		if i := strings.LastIndexByte(path, sep); i > last {
			last = i
		}
	}
	return path[last+1:]
}
