package header

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/ioutil"
)

const listSep = ", "

type renderer interface {
	RenderTo(w io.Writer) (num int, err error)
}

// RenderList writes items to w separated by ", ". It returns the number of bytes written.
// Items with a RenderTo(io.Writer) (int, error) method, like [Date], render themselves,
// others are written in their default format (as by [fmt.Fprint]).
//
// An empty or nil list renders nothing and returns (0, nil).
// Rendering stops at the first error returned by w and that error is returned.
func RenderList[T any](w io.Writer, items []T) (num int, err error) {
	cw := ioutil.NewCountingWriter(w)
	for i := range items {
		if i > 0 {
			cw.WriteString(listSep) //nolint:errcheck
		}
		if r, ok := any(items[i]).(renderer); ok {
			cw.Call(r.RenderTo)
		} else {
			cw.Fprint(items[i]) //nolint:errcheck
		}
		if cw.Err() != nil {
			break
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// FormatList returns items rendered as by [RenderList].
func FormatList[T any](items []T) string {
	var sb strings.Builder
	RenderList(&sb, items) //nolint:errcheck
	return sb.String()
}
