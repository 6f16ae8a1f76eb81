package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// load <file>: run the placeholder loader and print the record count.
func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Run the placeholder loader against a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := appCtx.Processor.LoadData(args[0])
			fmt.Printf("loaded %d records\n", n)
			return nil
		},
	}
}
