// Package stringutils provides helpers for text held in strings or byte slices.
package stringutils

import (
	"strings"
	"unicode/utf8"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

// EqFold reports whether s1 and s2 are equal under simple Unicode case-folding.
func EqFold[T1, T2 constraints.Byteseq](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// Ellipsis cuts s to at most maxLen characters and marks the cut with "...".
// Bytes that are not valid UTF-8 count as one character each.
func Ellipsis[T constraints.Byteseq](s T, maxLen int) string {
	str := string(s)
	n := 0
	for i := 0; i < len(str); n++ {
		if n == maxLen {
			return str[:i] + "..."
		}
		_, size := utf8.DecodeRuneInString(str[i:])
		i += size
	}
	return str
}
