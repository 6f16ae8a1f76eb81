package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sampledata/internal/app"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sampledata",
		Short: "Sample data processing CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}

			a, err := app.NewWire(app.Config{
				ConfigPath: configPath,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "processor config file (YAML mapping)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(processCmd(), validateCmd(), metricsCmd(), loadCmd(), requestCmd())
	return root.Execute()
}
