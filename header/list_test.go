package header_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
)

func TestRenderList(t *testing.T) {
	t.Parallel()

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name  string
			items []string
			want  string
		}{
			{"nil", nil, ""},
			{"empty", []string{}, ""},
			{"one", []string{"a"}, "a"},
			{"three", []string{"a", "b", "c"}, "a, b, c"},
			{"empty items", []string{"", ""}, ", "},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				t.Parallel()

				var sb strings.Builder
				num, err := header.RenderList(&sb, c.items)
				if err != nil {
					t.Fatalf("header.RenderList(sb, %q) error = %v, want nil", c.items, err)
				}
				if got := sb.String(); got != c.want {
					t.Errorf("sb.String() = %q, want %q", got, c.want)
				}
				if num != len(c.want) {
					t.Errorf("header.RenderList(sb, %q) num = %d, want %d", c.items, num, len(c.want))
				}
			})
		}
	})

	t.Run("displayable", func(t *testing.T) {
		t.Parallel()

		if got, want := header.FormatList([]int{1, 2, 3}), "1, 2, 3"; got != want {
			t.Errorf("header.FormatList([1 2 3]) = %q, want %q", got, want)
		}
		if got, want := header.FormatList([]header.Token{"GET", "HEAD"}), "GET, HEAD"; got != want {
			t.Errorf("header.FormatList([GET HEAD]) = %q, want %q", got, want)
		}
		dates := []header.Date{{Time: nov07}, {}}
		if got, want := header.FormatList(dates), "Sun, 07 Nov 1994 08:48:37 GMT, Mon, 01 Jan 0001 00:00:00 GMT"; got != want {
			t.Errorf("header.FormatList(dates) = %q, want %q", got, want)
		}
	})
}

func TestRenderList_Error(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		limit   int
		items   []string
		wantOut string
		wantNum int
	}{
		{"first item", 0, []string{"abc", "def"}, "", 0},
		{"separator", 3, []string{"abc", "def"}, "abc", 3},
		{"last item", 6, []string{"abc", "def"}, "abc, d", 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			w := &limitWriter{limit: c.limit}
			num, err := header.RenderList(w, c.items)
			if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("header.RenderList(w, %q) error = %v, want %v\ndiff (-got +want):\n%v", c.items, err, errWrite, diff)
			}
			if num != c.wantNum {
				t.Errorf("header.RenderList(w, %q) num = %d, want %d", c.items, num, c.wantNum)
			}
			if got := w.sb.String(); got != c.wantOut {
				t.Errorf("written = %q, want %q", got, c.wantOut)
			}
			if w.calls > w.failedAt {
				t.Errorf("writer called %d times after failure at call %d", w.calls, w.failedAt)
			}
		})
	}
}

// limitWriter accepts up to limit bytes and fails afterwards.
type limitWriter struct {
	sb       strings.Builder
	limit    int
	calls    int
	failedAt int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	w.calls++
	room := w.limit - w.sb.Len()
	if len(p) > room {
		if room > 0 {
			w.sb.Write(p[:room])
		} else {
			room = 0
		}
		w.failedAt = w.calls
		return room, errtrace.Wrap(errWrite)
	}
	return errtrace.Wrap2(w.sb.Write(p))
}

func TestRenderList_SinkErrorUnchanged(t *testing.T) {
	t.Parallel()

	_, err := header.RenderList(failWriter{}, []string{"a"})
	if !errors.Is(err, errWrite) {
		t.Errorf("header.RenderList(failWriter, [a]) error = %v, want %v", err, errWrite)
	}
}

// quoted renders itself quoted but prints bare.
type quoted string

func (q quoted) String() string { return string(q) }

func (q quoted) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(fmt.Fprintf(w, "%q", string(q)))
}

func TestRenderList_RenderTo(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	num, err := header.RenderList(&sb, []quoted{"a", "b"})
	if err != nil {
		t.Fatalf("header.RenderList(sb, [a b]) error = %v, want nil", err)
	}
	if got, want := sb.String(), `"a", "b"`; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	if num != sb.Len() {
		t.Errorf("header.RenderList(sb, [a b]) num = %d, want %d", num, sb.Len())
	}

	w := &limitWriter{limit: 5}
	num, err = header.RenderList(w, []header.Date{{Time: nov07}})
	if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("header.RenderList(w, dates) error = %v, want %v\ndiff (-got +want):\n%v", err, errWrite, diff)
	}
	if num != 5 {
		t.Errorf("header.RenderList(w, dates) num = %d, want 5", num)
	}
}
