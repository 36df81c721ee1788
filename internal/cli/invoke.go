/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"

	"github.com/suparena/statuslogs/handlers"
)

// InvokeOptions holds flags for the invoke command.
type InvokeOptions struct {
	*RootOptions
	NotificationID string
	LogID          string
}

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvokeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoke <list|details|summary>",
		Short: "Run one handler against the configured table and print the response",
		Long: `Run one handler against the configured table and print the response.

Example:
  statuslogs invoke summary --notification-id N1
  statuslogs invoke details --notification-id N1 --log-id L1 --format json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: handlers.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invokeHandler(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.NotificationID, "notification-id", "", "notification_id path parameter")
	cmd.Flags().StringVar(&opts.LogID, "log-id", "", "log_id path parameter (details only)")

	return cmd
}

func invokeHandler(cmd *cobra.Command, opts *InvokeOptions, name string) error {
	cfg, logger, store, err := opts.setup(cmd)
	if err != nil {
		return err
	}

	h := handlers.New(store, handlers.Config{TableName: cfg.TableName}, handlers.WithLogger(logger))
	fn, err := h.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "select handler", err)
	}

	params := map[string]string{handlers.NotificationIDParam: opts.NotificationID}
	if name == handlers.NameDetails {
		params[handlers.LogIDParam] = opts.LogID
	}

	resp, err := fn(cmd.Context(), events.APIGatewayProxyRequest{PathParameters: params})
	if err != nil {
		return WrapExitError(ExitFailure, "invoke "+name, err)
	}

	if err := writeResponse(cmd, opts.Format, resp); err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return NewExitError(ExitFailure, fmt.Sprintf("%s answered %d", name, resp.StatusCode))
	}
	return nil
}

func writeResponse(cmd *cobra.Command, format string, resp events.APIGatewayProxyResponse) error {
	out := cmd.OutOrStdout()
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			StatusCode int             `json:"statusCode"`
			Body       json.RawMessage `json:"body"`
		}{
			StatusCode: resp.StatusCode,
			Body:       json.RawMessage(resp.Body),
		})
	}

	_, err := fmt.Fprintf(out, "%d %s\n%s\n", resp.StatusCode, http.StatusText(resp.StatusCode), resp.Body)
	return err
}
