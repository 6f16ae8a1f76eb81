package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// metrics [numbers...]: print count, sum and average as JSON.
func metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics [numbers...]",
		Short: "Count, sum and average numeric values",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, 0, len(args))
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parse value %q: %w", arg, err)
				}
				values = append(values, v)
			}
			out, err := json.Marshal(appCtx.Metrics.Calculate(values))
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
