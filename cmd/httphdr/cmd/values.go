package cmd

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/internal/errorutil"
)

const (
	typeToken  = "token"
	typeInt    = "int"
	typeString = "string"
	typeDate   = "date"
)

// errRejected is returned when the field value is rejected by the decoder.
const errRejected errorutil.Error = "field value rejected"

// renderFunc writes a decoded value to w.
type renderFunc func(w io.Writer) error

type oneDecoder func(raw [][]byte) (renderFunc, bool)

type listDecoder func(raw [][]byte) (renderFunc, int, bool)

var oneDecoders = map[string]oneDecoder{
	typeToken:  decodeOne(header.DecodeOne[header.Token]),
	typeInt:    decodeOne(func(raw [][]byte) (int, bool) { return header.DecodeOneFunc[int](raw, strconv.Atoi) }),
	typeString: decodeOne(func(raw [][]byte) (string, bool) { return header.DecodeOneFunc[string](raw, header.ParseText) }),
	typeDate:   decodeOne(header.DecodeOne[header.Date]),
}

// Dates carry commas and can not be list elements.
var listDecoders = map[string]listDecoder{
	typeToken:  decodeList(header.DecodeList[header.Token]),
	typeInt:    decodeList(func(raw [][]byte) ([]int, bool) { return header.DecodeListFunc[int](raw, strconv.Atoi) }),
	typeString: decodeList(func(raw [][]byte) ([]string, bool) { return header.DecodeListFunc[string](raw, header.ParseText) }),
}

func decodeOne[T any](decode func([][]byte) (T, bool)) oneDecoder {
	return func(raw [][]byte) (renderFunc, bool) {
		v, ok := decode(raw)
		if !ok {
			return nil, false
		}
		return func(w io.Writer) error {
			_, err := header.RenderList(w, []T{v})
			return errtrace.Wrap(err)
		}, true
	}
}

func decodeList[T any](decode func([][]byte) ([]T, bool)) listDecoder {
	return func(raw [][]byte) (renderFunc, int, bool) {
		items, ok := decode(raw)
		if !ok {
			return nil, 0, false
		}
		return func(w io.Writer) error {
			_, err := header.RenderList(w, items)
			return errtrace.Wrap(err)
		}, len(items), true
	}
}

func lookupDecoder[D any](decoders map[string]D, typ string) (D, error) {
	dec, ok := decoders[typ]
	if !ok {
		var zero D
		return zero, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"unknown value type %q, expected one of %s", typ, typeNames(decoders)))
	}
	return dec, nil
}

func typeNames[D any](decoders map[string]D) string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
