// Package log provides logging utilities for the command line tools.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/stringutils"
)

// Format selects the handler used by [New].
type Format string

const (
	// FormatConsole is a human readable colored output.
	FormatConsole Format = "console"
	// FormatDev is a verbose developer output with sorted keys.
	FormatDev Format = "dev"
	// FormatNone discards all records.
	FormatNone Format = "none"
)

// MaxValueLen limits the number of characters of a logged raw value.
const MaxValueLen = 256

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	// Raw header bytes are logged as text when possible.
	slogformatter.FormatByType(func(b []byte) slog.Value {
		if utf8.Valid(b) {
			return slog.StringValue(stringutils.Ellipsis(b, MaxValueLen))
		}
		return slog.StringValue(fmt.Sprintf("%q", stringutils.Ellipsis(b, MaxValueLen)))
	}),
	slogformatter.FormatByType(func(raw [][]byte) slog.Value {
		vals := make([]string, len(raw))
		for i := range raw {
			vals[i] = fmt.Sprintf("%q", stringutils.Ellipsis(raw[i], MaxValueLen))
		}
		return slog.StringValue("[" + strings.Join(vals, " ") + "]")
	}),
)

// New creates a logger writing records of the given format at or above level to w.
func New(format Format, w io.Writer, level slog.Leveler) (*slog.Logger, error) {
	switch format {
	case FormatConsole, "":
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				Level:      level,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		)), nil
	case FormatNone:
		return Noop, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", string(format)))
	}
}

// ParseLevel parses a level name like "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
