package cmd

import (
	"bytes"
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
)

func newListCmd(in *inputOptions) *cobra.Command {
	var (
		typ     string
		combine bool
	)

	listCmd := &cobra.Command{
		Use:   "list [value...]",
		Short: "Decodes a comma-separated list field",
		Long: `Decodes a comma-separated list field and prints the valid elements.

The field must occur exactly once unless --combine is set, in which case all field lines
are joined with commas in order before decoding.`,
		Example: `  httphdr list --type token 'GET, HEAD, bad token'
  printf 'Allow: GET\r\nAllow: PUT\r\n' | httphdr list -H Allow --combine`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := lookupDecoder(listDecoders, typ)
			if err != nil {
				return errtrace.Wrap(err)
			}
			raw, err := in.fieldLines(cmd, args)
			if err != nil {
				return errtrace.Wrap(err)
			}
			if combine && len(raw) > 1 {
				raw = [][]byte{bytes.Join(raw, []byte(", "))}
			}

			render, n, ok := dec(raw)
			if !ok {
				logger(cmd).Warn("failed to decode field value", "type", typ, "field", in.header, "raw", raw)
				return errtrace.Wrap(errRejected)
			}
			logger(cmd).Debug("decoded list field", "type", typ, "field", in.header, "items", n)
			if err := render(cmd.OutOrStdout()); err != nil {
				return errtrace.Wrap(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return errtrace.Wrap(err)
		},
	}
	flags := listCmd.Flags()
	flags.StringVarP(&typ, "type", "t", typeToken, "element type: int, string or token")
	flags.BoolVar(&combine, "combine", false, "join repeated field lines into one list")
	return listCmd
}
