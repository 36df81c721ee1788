/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/suparena/statuslogs/errors"
	"github.com/suparena/statuslogs/storagemodels"
)

// GetOne retrieves a single status log by its full key.
// A miss is not an error: the result carries a nil Item.
func (d *DynamodbDataStore) GetOne(ctx context.Context, params *storagemodels.GetParams) (*storagemodels.GetResult, error) {
	table, err := d.resolveTable(params.TableName)
	if err != nil {
		return nil, errors.NewStoreError("get", table, err)
	}

	key, err := attributevalue.MarshalMap(params.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		d.logRequestError(ctx, "GetItem", table, err)
		return nil, errors.NewStoreError("get", table, err)
	}

	// Some fakes return an empty map instead of nil on a miss.
	if out == nil || len(out.Item) == 0 {
		return &storagemodels.GetResult{}, nil
	}

	record, err := unmarshalRecord(out.Item)
	if err != nil {
		return nil, err
	}
	return &storagemodels.GetResult{Item: record}, nil
}
