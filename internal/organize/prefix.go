package organize

import "unicode/utf8"

// CommonPrefix returns the byte length of the longest prefix shared by every
// name. It returns 0 for an empty slice and never splits a UTF-8 sequence, so
// the result is always safe for slicing.
func CommonPrefix(names []string) int {
	if len(names) == 0 {
		return 0
	}

	first := names[0]
	n := len(first)
	for _, name := range names[1:] {
		i := 0
		for i < n && i < len(name) && first[i] == name[i] {
			i++
		}
		n = i
	}

	for n > 0 && n < len(first) && !utf8.RuneStart(first[n]) {
		n--
	}
	return n
}

// TrimPrefix drops the first n bytes of name for display, keeping the full
// name when it is no longer than the prefix.
func TrimPrefix(name string, n int) string {
	if n <= 0 || len(name) <= n {
		return name
	}
	return name[n:]
}
