/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cli

import (
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"github.com/suparena/statuslogs/handlers"
)

// LambdaOptions holds flags for the lambda command.
type LambdaOptions struct {
	*RootOptions
	Handler string

	// start defaults to lambda.Start; replaced in tests.
	start func(handler any)
}

// NewLambdaCommand creates the lambda command.
func NewLambdaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LambdaOptions{RootOptions: rootOpts, start: lambda.Start}

	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run one status log handler under the AWS Lambda runtime",
		Long: fmt.Sprintf(`Run one status log handler under the AWS Lambda runtime.

The handler is chosen with --handler or STATUS_LOGS_HANDLER, one of %v.`, handlers.Names()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLambda(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Handler, "handler", "", "handler to serve (list|details|summary)")

	return cmd
}

func runLambda(cmd *cobra.Command, opts *LambdaOptions) error {
	cfg, logger, store, err := opts.setup(cmd)
	if err != nil {
		return err
	}

	name := opts.Handler
	if name == "" {
		name = cfg.Handler
	}

	h := handlers.New(store, handlers.Config{TableName: cfg.TableName}, handlers.WithLogger(logger))
	fn, err := h.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "select handler", err)
	}

	logger.Info("starting lambda handler",
		slog.String("handler", name),
		slog.String("table", cfg.TableName),
	)
	opts.start(fn)
	return nil
}
