package header

import "github.com/ghettovoice/httphdr/internal/errorutil"

// Error is a grammar error of a header value.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a grammar error, see errorutil.IsGrammarErr.
func (Error) Grammar() bool { return true }

const (
	// ErrMalformedDate is returned when a value matches none of the HTTP-date forms.
	ErrMalformedDate Error = "malformed HTTP-date"
	// ErrMalformedToken is returned when a value is not a valid token.
	ErrMalformedToken Error = "malformed token"

	errFieldCount  Error = "field must occur exactly once"
	errInvalidUTF8 Error = "invalid UTF-8"
)

func newMalformedDateErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedDate, args...) //errtrace:skip
}

func newMalformedTokenErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedToken, args...) //errtrace:skip
}
