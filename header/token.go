package header

import (
	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"

	"github.com/ghettovoice/httphdr/internal/constraints"
)

// Token is a token as defined by RFC 9110 Section 5.6.2:
// one or more visible ASCII characters excluding delimiters.
// Methods, coding names and field names in list headers are tokens.
type Token string

// String returns the token text.
func (t Token) String() string { return string(t) }

// IsValid reports whether t is a well-formed token.
func (t Token) IsValid() bool { return isToken(t) }

// MarshalText implements [encoding.TextMarshaler].
func (t Token) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, errtrace.Wrap(newMalformedTokenErr("%q", string(t)))
	}
	return []byte(t), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// On failure t is left unchanged and the error matches [ErrMalformedToken].
func (t *Token) UnmarshalText(text []byte) error {
	if !isToken(text) {
		return errtrace.Wrap(newMalformedTokenErr("%q", text))
	}
	*t = Token(text)
	return nil
}

func isToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !httpguts.IsTokenRune(rune(s[i])) {
			return false
		}
	}
	return true
}
