package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// process [items...]: print the processed items as a JSON array.
func processCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process [items...]",
		Short: "Trim, lowercase and filter a list of items",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.Marshal(appCtx.Processor.Process(args))
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
