package header

//go:generate go tool errtrace -w .

import (
	"encoding"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
)

// TextUnmarshaler is satisfied by *T when T can parse itself from text.
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// ParseFunc parses a single text token into a value of type T.
// Functions like [strconv.Atoi] and [ParseText] fit it directly.
type ParseFunc[T any] func(s string) (T, error)

// ParseText is a [ParseFunc] that accepts any text as is.
func ParseText(s string) (string, error) { return s, nil }

func unmarshalText[T any, PT TextUnmarshaler[T]](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return v, nil
}

// DecodeOne decodes a field that must occur exactly once.
// It returns the zero value and false if raw does not have exactly one element,
// the element is not valid UTF-8 or its text is rejected by T's UnmarshalText.
func DecodeOne[T any, PT TextUnmarshaler[T]](raw [][]byte) (T, bool) {
	return DecodeOneFunc[T](raw, unmarshalText[T, PT])
}

// DecodeOneFunc is like [DecodeOne] but parses the text with parse.
func DecodeOneFunc[T any](raw [][]byte, parse ParseFunc[T]) (T, bool) {
	v, err := decodeOne(raw, parse)
	return v, err == nil
}

func decodeOne[T any](raw [][]byte, parse ParseFunc[T]) (T, error) {
	var zero T
	b, err := singleValue(raw)
	if err != nil {
		return zero, errtrace.Wrap(err)
	}
	s, err := utf8Text(b)
	if err != nil {
		return zero, errtrace.Wrap(err)
	}
	v, err := parse(s)
	if err != nil {
		return zero, errtrace.Wrap(err)
	}
	return v, nil
}

// DecodeList decodes a comma-delimited field that must occur exactly once,
// see [DecodeListValue].
func DecodeList[T any, PT TextUnmarshaler[T]](raw [][]byte) ([]T, bool) {
	return DecodeListFunc[T](raw, unmarshalText[T, PT])
}

// DecodeListFunc is like [DecodeList] but parses elements with parse.
func DecodeListFunc[T any](raw [][]byte, parse ParseFunc[T]) ([]T, bool) {
	b, err := singleValue(raw)
	if err != nil {
		return nil, false
	}
	return DecodeListValueFunc[T](b, parse)
}

// DecodeListValue decodes a single comma-delimited field value.
//
// The value must be valid UTF-8, otherwise DecodeListValue returns nil and false.
// It is split on commas, each element is trimmed of surrounding ASCII whitespace
// and parsed with T's UnmarshalText. Elements that fail to parse are dropped.
// The remaining elements are returned in their original order, duplicates included,
// as a non-nil slice.
func DecodeListValue[T any, PT TextUnmarshaler[T]](raw []byte) ([]T, bool) {
	return DecodeListValueFunc[T](raw, unmarshalText[T, PT])
}

// DecodeListValueFunc is like [DecodeListValue] but parses elements with parse.
func DecodeListValueFunc[T any](raw []byte, parse ParseFunc[T]) ([]T, bool) {
	s, err := utf8Text(raw)
	if err != nil {
		return nil, false
	}

	items := make([]T, 0, strings.Count(s, ",")+1)
	for elem := range strings.SplitSeq(s, ",") {
		v, err := parse(trimASCIISpace(elem))
		if err != nil {
			continue
		}
		items = append(items, v)
	}
	return items, true
}

func singleValue(raw [][]byte) ([]byte, error) {
	if len(raw) != 1 {
		return nil, errtrace.Wrap(errFieldCount)
	}
	return raw[0], nil
}

func utf8Text(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errtrace.Wrap(errInvalidUTF8)
	}
	return string(b), nil
}

const asciiSpace = " \t\n\v\f\r"

func trimASCIISpace(s string) string { return strings.Trim(s, asciiSpace) }
