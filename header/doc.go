// Package header provides the low-level primitives used by HTTP header value
// codecs: decoding raw field values into typed values, decoding comma-delimited
// lists, rendering lists back into wire text, and parsing and formatting HTTP
// dates (RFC 9110 Section 5.6.7).
//
// # Raw values
//
// A raw header value is a [][]byte holding every occurrence of a field as it was
// received, one element per occurrence. Raw bytes are not trusted to be UTF-8;
// every decoder validates the encoding before looking at the text.
//
// # Decoding
//
// Decoders are generic over the target type. A type can take part in two ways:
//
//   - its pointer implements [encoding.TextUnmarshaler], then use [DecodeOne],
//     [DecodeList] or [DecodeListValue]:
//
//     date, ok := header.DecodeOne[header.Date](raw)
//
//   - a [ParseFunc] is supplied explicitly, then use [DecodeOneFunc],
//     [DecodeListFunc] or [DecodeListValueFunc]:
//
//     nums, ok := header.DecodeListValueFunc([]byte("1, x, 3"), strconv.Atoi) // [1 3], true
//
// Decoders never return errors. A missing, repeated, non-UTF-8 or unparsable
// value gives "no result" (ok == false) and the caller should treat the field
// as absent. Inside a comma-delimited list, elements that fail to parse are
// dropped and the rest is returned in order.
//
// # Rendering
//
// [RenderList] writes items separated by ", " to an [io.Writer]. An empty list
// renders nothing. The first write error stops rendering and is returned.
//
// # Dates
//
// [ParseDate] accepts all three HTTP-date forms, tried in this order:
//
//	Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
//	Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
//	Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format
//
// The result is always in UTC with zero nanoseconds. [FormatDate], [AppendDate]
// and [RenderDate] always produce the IMF-fixdate form, the only form a sender
// is allowed to generate.
//
// # Concurrency
//
// All functions are pure: they keep no state between calls and are safe for
// concurrent use.
package header
