/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/statuslogs"
	"github.com/suparena/statuslogs/config"
	"github.com/suparena/statuslogs/datastore"
	"github.com/suparena/statuslogs/datastore/mock"
	"github.com/suparena/statuslogs/handlers"
	"github.com/suparena/statuslogs/storagemodels"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvTableName, "status-logs")
	t.Setenv(config.EnvHandler, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "json")
}

func mockFactory(store *mock.DataStore) StoreFactory {
	return func(ctx context.Context, cfg config.Config, logger *slog.Logger) (datastore.StatusLogStore, error) {
		return store, nil
	}
}

func seededStore() *mock.DataStore {
	store := mock.New()
	store.Put(storagemodels.StatusLogRecord{"notification_id": "N1", "log_id": "L1", "delivery_status": "DELIVERED"})
	store.Put(storagemodels.StatusLogRecord{"notification_id": "N1", "log_id": "L2", "delivery_status": "FAILED"})
	return store
}

func execute(t *testing.T, store *mock.DataStore, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCommand(&RootOptions{NewStore: mockFactory(store)})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "statuslogs", cmd.Use)

	for _, cmdName := range []string{"serve", "lambda", "invoke", "version"} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestInvokeSummaryText(t *testing.T) {
	setEnv(t)

	out, err := execute(t, seededStore(), "invoke", "summary", "--notification-id", "N1")
	require.NoError(t, err)
	assert.Equal(t, "200 OK\n{\"DELIVERED\":1,\"FAILED\":1,\"total_notification_sent\":2}\n", out)
}

func TestInvokeDetailsJSON(t *testing.T) {
	setEnv(t)

	out, err := execute(t, seededStore(), "invoke", "details", "--notification-id", "N1", "--log-id", "L2", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		StatusCode int            `json:"statusCode"`
		Body       map[string]any `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "FAILED", resp.Body["delivery_status"])
}

func TestInvokeBadRequestExitCode(t *testing.T) {
	setEnv(t)
	store := seededStore()

	out, err := execute(t, store, "invoke", "list")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[ListStatusLogs:List:Error]:Bad Request: Invalid notification_id")
	assert.Empty(t, store.QueryCalls())
}

func TestInvokeUnknownHandler(t *testing.T) {
	setEnv(t)

	_, err := execute(t, seededStore(), "invoke", "delete", "--notification-id", "N1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvokeMissingTable(t *testing.T) {
	setEnv(t)
	t.Setenv(config.EnvTableName, "")

	_, err := execute(t, seededStore(), "invoke", "list", "--notification-id", "N1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), config.EnvTableName)
}

func TestInvalidFormat(t *testing.T) {
	setEnv(t)

	_, err := execute(t, seededStore(), "version", "--format", "xml")
	require.Error(t, err)
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, mock.New(), "version", "--format", "json")
	require.NoError(t, err)

	var info statuslogs.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, statuslogs.Version, info.Version)
}

func TestLambdaStartsSelectedHandler(t *testing.T) {
	setEnv(t)
	t.Setenv(config.EnvHandler, handlers.NameSummary)

	var started any
	opts := &LambdaOptions{
		RootOptions: &RootOptions{Format: "text", NewStore: mockFactory(seededStore())},
		start:       func(handler any) { started = handler },
	}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, runLambda(cmd, opts))

	fn, ok := started.(handlers.Func)
	require.True(t, ok, "expected a handlers.Func, got %T", started)

	resp, err := fn(context.Background(), events.APIGatewayProxyRequest{
		PathParameters: map[string]string{"notification_id": "N1"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_notification_sent":2,"DELIVERED":1,"FAILED":1}`, resp.Body)
}

func TestLambdaUnknownHandler(t *testing.T) {
	setEnv(t)

	opts := &LambdaOptions{
		RootOptions: &RootOptions{Format: "text", NewStore: mockFactory(seededStore())},
		Handler:     "purge",
		start:       func(handler any) { t.Fatal("must not start") },
	}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetErr(&bytes.Buffer{})

	err := runLambda(cmd, opts)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "wrapped", errors.New("cause"))))
}
