package header

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"braces.dev/errtrace"
)

const (
	imfFixdateLayout = "Mon, 02 Jan 2006 15:04:05 MST"
	rfc850DateLayout = "Monday, 02-Jan-06 15:04:05 MST"
	asctimeLayout    = "Mon Jan _2 15:04:05 2006"

	// Zero-padded day seen from some senders.
	asctimeZeroDayLayout = "Mon Jan 02 15:04:05 2006"
)

type dateParser func(s string) (time.Time, error)

// ParseDate parses s as an HTTP-date (RFC 9110 Section 5.6.7).
//
// The IMF-fixdate, obsolete RFC 850 and asctime forms are tried in this order,
// the first match wins. The zone name of the first two forms is required but not
// resolved: the wall clock is taken as is and the result is in UTC.
// ParseDate returns the zero time and false if s matches none of the forms.
func ParseDate(s string) (time.Time, bool) {
	t, err := parseDate(s)
	return t, err == nil
}

func parseDate(s string) (time.Time, error) {
	parsers := []dateParser{parseIMFFixdate, parseRFC850Date, parseAsctimeDate}
	errs := make([]error, 0, len(parsers))
	for _, parse := range parsers {
		t, err := parse(s)
		if err == nil {
			return t, nil
		}
		errs = append(errs, err)
	}
	return time.Time{}, errtrace.Wrap(newMalformedDateErr(errors.Join(errs...)))
}

// Sun, 06 Nov 1994 08:49:37 GMT
func parseIMFFixdate(s string) (time.Time, error) {
	return errtrace.Wrap2(parseDateLayout(s, imfFixdateLayout))
}

// Sunday, 06-Nov-94 08:49:37 GMT
func parseRFC850Date(s string) (time.Time, error) {
	return errtrace.Wrap2(parseDateLayout(s, rfc850DateLayout))
}

// Sun Nov  6 08:49:37 1994
func parseAsctimeDate(s string) (time.Time, error) {
	t, err := parseDateLayout(s, asctimeLayout)
	if err == nil {
		return t, nil
	}
	if t, err2 := parseDateLayout(s, asctimeZeroDayLayout); err2 == nil {
		return t, nil
	}
	return time.Time{}, errtrace.Wrap(err)
}

func parseDateLayout(s, layout string) (time.Time, error) {
	// Parsing in UTC keeps unknown zone names as fixed zones with the wall clock untouched,
	// otherwise a name like GMT could resolve against time.Local.
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, errtrace.Wrap(newMalformedDateErr(err))
	}
	if err := checkDateShape(s, t, layout); err != nil {
		return time.Time{}, errtrace.Wrap(err)
	}
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(year, month, day, hour, minute, sec, 0, time.UTC), nil
}

// checkDateShape rejects what the time package tolerates beyond the layout:
// fractional seconds, numeric or GMT+N zones, unpadded fields,
// runs of spaces and names in other letter case.
// The weekday name is matched exactly but not against the date.
func checkDateShape(s string, t time.Time, layout string) error {
	zone, offset := t.Zone()
	if offset != 0 || !isUpperAlpha(zone) {
		return errtrace.Wrap(newMalformedDateErr("invalid zone %q", zone))
	}
	wday, rest, ok := cutWeekday(s)
	if !ok || !isWeekdayName(wday) {
		return errtrace.Wrap(newMalformedDateErr("invalid weekday in %q", s))
	}
	if _, want, _ := cutWeekday(t.Format(layout)); rest != want {
		return errtrace.Wrap(newMalformedDateErr("%q does not match layout %q", s, layout))
	}
	return nil
}

func cutWeekday(s string) (wday, rest string, ok bool) {
	i := strings.IndexAny(s, ", ")
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i:], true
}

func isUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isWeekdayName(s string) bool {
	for d := range time.Weekday(7) {
		if name := d.String(); s == name || s == name[:3] {
			return true
		}
	}
	return false
}

// FormatDate returns t in UTC formatted as IMF-fixdate.
func FormatDate(t time.Time) string { return t.UTC().Format(http.TimeFormat) }

// AppendDate is like [FormatDate] but appends the result to b.
func AppendDate(b []byte, t time.Time) []byte { return t.UTC().AppendFormat(b, http.TimeFormat) }

// RenderDate writes t in UTC formatted as IMF-fixdate to w.
func RenderDate(w io.Writer, t time.Time) (num int, err error) {
	var buf [len(http.TimeFormat)]byte
	return errtrace.Wrap2(w.Write(AppendDate(buf[:0], t)))
}

// Date is an HTTP-date value.
// It decodes from any of the three HTTP-date forms and always encodes as IMF-fixdate.
type Date struct {
	time.Time
}

// String returns the date formatted as IMF-fixdate.
func (d Date) String() string { return FormatDate(d.Time) }

// RenderTo writes the date formatted as IMF-fixdate to w.
func (d Date) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(RenderDate(w, d.Time))
}

// Equal reports whether val holds the same instant.
// val can be a Date, *Date or [time.Time].
func (d Date) Equal(val any) bool {
	switch v := val.(type) {
	case Date:
		return d.Time.Equal(v.Time)
	case *Date:
		return v != nil && d.Time.Equal(v.Time)
	case time.Time:
		return d.Time.Equal(v)
	default:
		return false
	}
}

// IsValid reports whether the date is set.
func (d Date) IsValid() bool { return !d.IsZero() }

// MarshalText implements [encoding.TextMarshaler].
func (d Date) MarshalText() ([]byte, error) {
	return AppendDate(nil, d.Time), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// On failure d is reset to the zero Date and the error matches [ErrMalformedDate].
func (d *Date) UnmarshalText(text []byte) error {
	t, err := parseDate(string(text))
	if err != nil {
		*d = Date{}
		return errtrace.Wrap(err)
	}
	d.Time = t
	return nil
}

// MarshalJSON encodes the date as a JSON string holding IMF-fixdate.
func (d Date) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(d.String()))
}

// UnmarshalJSON decodes a JSON string holding any HTTP-date form.
// JSON null leaves d untouched.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(d.UnmarshalText([]byte(s)))
}
