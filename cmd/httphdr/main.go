// Command httphdr decodes and renders HTTP field values from the command line.
package main

import (
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/cmd/httphdr/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
