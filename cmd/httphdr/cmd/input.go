package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"golang.org/x/net/http/httpguts"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/stringutils"
)

const stdinFile = "-"

type inputOptions struct {
	file    string
	charset string
	header  string
}

func (o *inputOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.file, "file", "f", stdinFile, `input file, "-" reads standard input`)
	flags.StringVar(&o.charset, "charset", "", "IANA charset of the input, the bytes are taken as is when empty")
	flags.StringVarP(&o.header, "header", "H", "", "field name to select from a header block")
}

// fieldLines returns the raw field line values to decode, one element per field line.
func (o *inputOptions) fieldLines(cmd *cobra.Command, args []string) ([][]byte, error) {
	if o.header != "" && !httpguts.ValidHeaderFieldName(o.header) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid field name %q", o.header))
	}

	if len(args) > 0 {
		raw := make([][]byte, 0, len(args))
		for _, arg := range args {
			b, err := o.decodeCharset([]byte(arg))
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			raw = append(raw, b)
		}
		return raw, nil
	}

	data, err := o.readInput(cmd)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	data, err = o.decodeCharset(data)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if o.header == "" {
		return splitValues(data), nil
	}
	return selectField(data, o.header), nil
}

func (o *inputOptions) readInput(cmd *cobra.Command) ([]byte, error) {
	if o.file == stdinFile {
		return errtrace.Wrap2(io.ReadAll(cmd.InOrStdin()))
	}
	return errtrace.Wrap2(os.ReadFile(o.file))
}

func (o *inputOptions) decodeCharset(b []byte) ([]byte, error) {
	if o.charset == "" {
		return b, nil
	}
	enc, err := ianaindex.MIME.Encoding(o.charset)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	if enc == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("no encoding found for charset %q", o.charset))
	}
	return errtrace.Wrap2(enc.NewDecoder().Bytes(b))
}

// splitValues treats every non-blank line as a single field line value.
func splitValues(data []byte) [][]byte {
	var raw [][]byte
	sc := newLineScanner(data)
	for sc.Scan() {
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		raw = append(raw, bytes.Clone(line))
	}
	return raw
}

// selectField collects the values of all name field lines of a header block.
// Lines starting with whitespace continue the previous line (obs-fold).
// Reading stops at the first empty line which ends the header section.
func selectField(data []byte, name string) [][]byte {
	var (
		raw     [][]byte
		matched bool
	)
	sc := newLineScanner(data)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			break
		}
		if line[0] == ' ' || line[0] == '\t' {
			if matched {
				last := len(raw) - 1
				raw[last] = append(append(raw[last], ' '), bytes.Trim(line, " \t")...)
			}
			continue
		}

		k, v, ok := bytes.Cut(line, []byte{':'})
		matched = ok && stringutils.EqFold(k, name)
		if matched {
			raw = append(raw, bytes.Clone(bytes.Trim(v, " \t")))
		}
	}
	return raw
}

func newLineScanner(data []byte) *bufio.Scanner {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(nil, max(len(data)+1, bufio.MaxScanTokenSize))
	return sc
}
