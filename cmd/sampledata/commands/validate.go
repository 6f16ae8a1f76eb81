package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// validate <data-json> <schema-json>: report whether data is a mapping and
// the schema is non-empty.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <data-json> <schema-json>",
		Short: "Check a JSON document against a schema mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data any
			if err := json.Unmarshal([]byte(args[0]), &data); err != nil {
				return fmt.Errorf("parse data: %w", err)
			}
			schema := map[string]any{}
			if err := json.Unmarshal([]byte(args[1]), &schema); err != nil {
				return fmt.Errorf("parse schema: %w", err)
			}
			fmt.Println(appCtx.Processor.Validate(data, schema))
			return nil
		},
	}
}
