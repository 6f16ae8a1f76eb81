package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sampledata/internal/domain"
)

var failMessage string

// request [payload]: route a request (or a forced failure) through the
// handler and print the response.
func requestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [payload]",
		Short: "Route a request through the handler and print the response",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp domain.Response
			if failMessage != "" {
				resp = appCtx.Handler.HandleError(errors.New(failMessage))
			} else {
				req := domain.Request{ID: uuid.NewString()}
				if len(args) == 1 {
					req.Payload = args[0]
				}
				resp = appCtx.Handler.HandleRequest(req)
			}
			out, err := json.Marshal(resp)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&failMessage, "fail", "", "route an error with this message instead")
	return cmd
}
