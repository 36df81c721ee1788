/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
)

var errNoTableName = errors.New("no table name configured")

// API is the subset of the DynamoDB client used by the store. *dynamodb.Client
// satisfies it, as do in-memory fakes.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// Settings holds what is needed to reach the table.
type Settings struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint  string
	TableName string
}

// DynamodbDataStore implements datastore.StatusLogStore on top of DynamoDB.
type DynamodbDataStore struct {
	client    API
	tableName string
	logger    *slog.Logger
}

// Option configures a DynamodbDataStore.
type Option func(*DynamodbDataStore)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *DynamodbDataStore) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used when
// both keys are set; otherwise the default credential chain applies.
func NewDynamoDBClient(ctx context.Context, settings Settings) (*sdk.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if settings.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(settings.Region))
	}
	if settings.AccessKey != "" && settings.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		}
	})
	return client, nil
}

// NewDynamodbDataStore builds a DynamoDB client from settings and wraps it in a store.
func NewDynamodbDataStore(ctx context.Context, settings Settings, opts ...Option) (*DynamodbDataStore, error) {
	client, err := NewDynamoDBClient(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	store := New(client, settings.TableName, opts...)
	store.logger.Info("dynamodb store initialized",
		slog.String("table", settings.TableName),
		slog.String("region", settings.Region),
		slog.String("endpoint", settings.Endpoint),
	)
	return store, nil
}

// New wraps an existing API implementation.
func New(client API, tableName string, opts ...Option) *DynamodbDataStore {
	d := &DynamodbDataStore{
		client:    client,
		tableName: tableName,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// resolveTable prefers the per-call table name and falls back to the store's own.
func (d *DynamodbDataStore) resolveTable(tableName string) (string, error) {
	if tableName != "" {
		return tableName, nil
	}
	if d.tableName != "" {
		return d.tableName, nil
	}
	return "", errNoTableName
}

func (d *DynamodbDataStore) logRequestError(ctx context.Context, operation, table string, err error) {
	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("table", table),
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, slog.String("error_code", apiErr.ErrorCode()))
	}
	attrs = append(attrs, slog.Any("error", err))
	d.logger.LogAttrs(ctx, slog.LevelDebug, "dynamodb request failed", attrs...)
}
