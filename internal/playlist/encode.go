package playlist

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// shouldEscape reports whether c is an ASCII control character or a square
// bracket. Bytes of multi-byte UTF-8 sequences are never escaped.
func shouldEscape(c byte) bool {
	return c < 0x20 || c == 0x7f || c == '[' || c == ']'
}

// EscapePath percent-encodes the characters of path that are unsafe in a
// playlist line: ASCII control characters (including "\n" and "\r") and the
// brackets "[" and "]". Every other byte is copied unchanged.
func EscapePath(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", fmt.Errorf("escape %q: %w", path, ErrInvalidText)
	}

	n := 0
	for i := 0; i < len(path); i++ {
		if shouldEscape(path[i]) {
			n++
		}
	}
	if n == 0 {
		return path, nil
	}

	var b strings.Builder
	b.Grow(len(path) + 2*n)
	for i := 0; i < len(path); i++ {
		c := path[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
