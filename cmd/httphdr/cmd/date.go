package cmd

import (
	"fmt"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/header"
)

func newDateCmd(in *inputOptions) *cobra.Command {
	var lenient bool

	dateCmd := &cobra.Command{
		Use:   "date [value...]",
		Short: "Normalizes an HTTP-date field to IMF-fixdate",
		Long: `Decodes an HTTP-date field in IMF-fixdate, RFC 850 or asctime form and prints it as IMF-fixdate.

With --lenient, values that are not HTTP-dates are given a second chance
with a general purpose date parser. Such values are interpreted in UTC.`,
		Example: `  httphdr date 'Sunday, 06-Nov-94 08:49:37 GMT'
  httphdr date --lenient 2006-01-02T15:04:05Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := in.fieldLines(cmd, args)
			if err != nil {
				return errtrace.Wrap(err)
			}

			t, ok := decodeDate(raw)
			if !ok && lenient {
				if t, ok = decodeAnyDate(raw); ok {
					logger(cmd).Info("value is not an HTTP-date, a sender must not generate it", "field", in.header, "raw", raw)
				}
			}
			if !ok {
				logger(cmd).Warn("failed to decode HTTP-date", "field", in.header, "raw", raw, "lenient", lenient)
				return errtrace.Wrap(errRejected)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), header.FormatDate(t))
			return errtrace.Wrap(err)
		},
	}
	dateCmd.Flags().BoolVar(&lenient, "lenient", false, "fall back to a general purpose date parser")
	return dateCmd
}

func decodeDate(raw [][]byte) (time.Time, bool) {
	d, ok := header.DecodeOne[header.Date](raw)
	return d.Time, ok
}

func decodeAnyDate(raw [][]byte) (time.Time, bool) {
	t, ok := header.DecodeOneFunc[time.Time](raw, func(s string) (time.Time, error) {
		return errtrace.Wrap2(dateparse.ParseIn(strings.TrimSpace(s), time.UTC))
	})
	return t.UTC(), ok
}
