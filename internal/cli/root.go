/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/suparena/statuslogs/config"
	"github.com/suparena/statuslogs/datastore"
	"github.com/suparena/statuslogs/datastore/ddb"
	"github.com/suparena/statuslogs/logging"
)

// StoreFactory opens the status log store for cfg.
type StoreFactory func(ctx context.Context, cfg config.Config, logger *slog.Logger) (datastore.StatusLogStore, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Format     string // "json" | "text"

	// NewStore defaults to a DynamoDB store built from the loaded configuration.
	NewStore StoreFactory
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the statuslogs CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{NewStore: dynamoDBStore})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statuslogs",
		Short: "Notification delivery status logs",
		Long:  "Serve and query notification delivery status logs stored in DynamoDB.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "YAML config file (overrides "+config.EnvConfigFile+")")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewLambdaCommand(opts))
	cmd.AddCommand(NewInvokeCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// setup loads the configuration, builds the logger and opens the store.
func (o *RootOptions) setup(cmd *cobra.Command) (config.Config, *slog.Logger, datastore.StatusLogStore, error) {
	cfg, err := config.LoadFile(o.ConfigFile)
	if err != nil {
		return config.Config{}, nil, nil, WrapExitError(ExitCommandError, "load config", err)
	}

	logger := logging.FromConfig(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	newStore := o.NewStore
	if newStore == nil {
		newStore = dynamoDBStore
	}
	store, err := newStore(cmd.Context(), cfg, logger)
	if err != nil {
		return config.Config{}, nil, nil, WrapExitError(ExitCommandError, "open store", err)
	}
	return cfg, logger, store, nil
}

func dynamoDBStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (datastore.StatusLogStore, error) {
	return ddb.NewDynamodbDataStore(ctx, ddb.Settings{
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Endpoint:  cfg.Endpoint,
		TableName: cfg.TableName,
	}, ddb.WithLogger(logger))
}
