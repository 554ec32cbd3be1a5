package cmd

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
)

func newOneCmd(in *inputOptions) *cobra.Command {
	var typ string

	oneCmd := &cobra.Command{
		Use:   "one [value...]",
		Short: "Decodes a field that must occur exactly once",
		Example: `  httphdr one --type int 42
  printf 'Host: example.com\r\nAge: 7\r\n' | httphdr one -H Age --type int`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := lookupDecoder(oneDecoders, typ)
			if err != nil {
				return errtrace.Wrap(err)
			}
			raw, err := in.fieldLines(cmd, args)
			if err != nil {
				return errtrace.Wrap(err)
			}

			render, ok := dec(raw)
			if !ok {
				logger(cmd).Warn("failed to decode field value", "type", typ, "field", in.header, "raw", raw)
				return errtrace.Wrap(errRejected)
			}
			if err := render(cmd.OutOrStdout()); err != nil {
				return errtrace.Wrap(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return errtrace.Wrap(err)
		},
	}
	oneCmd.Flags().StringVarP(&typ, "type", "t", typeString, "value type: date, int, string or token")
	return oneCmd
}
