package log_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format  log.Format
		wantOut bool
	}{
		{"", true},
		{log.FormatConsole, true},
		{log.FormatDev, true},
		{log.FormatNone, false},
	}

	for _, c := range cases {
		t.Run(string(c.format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := log.New(c.format, &buf, slog.LevelInfo)
			if err != nil {
				t.Fatalf("log.New(%q) error = %v, want nil", c.format, err)
			}
			logger.Debug("hidden")
			logger.Info("decoded field", "value", []byte("gzip"), "error", errors.New("boom"))

			out := buf.String()
			if strings.Contains(out, "hidden") {
				t.Errorf("output = %q, want no debug records", out)
			}
			if got := strings.Contains(out, "decoded field"); got != c.wantOut {
				t.Errorf("output contains record = %v, want %v\noutput: %q", got, c.wantOut, out)
			}
			if c.wantOut && !strings.Contains(out, "gzip") {
				t.Errorf("output = %q, want raw bytes logged as text", out)
			}
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	logger, err := log.New("xml", &bytes.Buffer{}, slog.LevelInfo)
	if diff := cmp.Diff(err, errorutil.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("log.New(xml) error = %v, want %v\ndiff (-got +want):\n%v", err, errorutil.ErrInvalidArgument, diff)
	}
	if logger != nil {
		t.Errorf("log.New(xml) logger = %v, want nil", logger)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    slog.Level
		wantErr error
	}{
		{"debug", slog.LevelDebug, nil},
		{"INFO", slog.LevelInfo, nil},
		{"warn", slog.LevelWarn, nil},
		{"error", slog.LevelError, nil},
		{"loud", 0, errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("log.ParseLevel(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("log.ParseLevel(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
