/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/statuslogs/errors"
	"github.com/suparena/statuslogs/storagemodels"
)

// Query runs a single-page partition-key Query. Items are returned in the order
// DynamoDB produced them. A response without an Items collection yields a nil
// Items slice so the caller can tell it apart from an empty partition.
func (d *DynamodbDataStore) Query(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryResult, error) {
	table, err := d.resolveTable(params.TableName)
	if err != nil {
		return nil, errors.NewStoreError("query", table, err)
	}

	keyName := params.PartitionKey
	if keyName == "" {
		keyName = storagemodels.NotificationIDAttr
	}

	keyCond := expression.Key(keyName).Equal(expression.Value(params.PartitionValue))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	out, err := d.client.Query(ctx, input)
	if err != nil {
		d.logRequestError(ctx, "Query", table, err)
		return nil, errors.NewStoreError("query", table, err)
	}

	if out == nil || out.Items == nil {
		return &storagemodels.QueryResult{}, nil
	}

	items, err := unmarshalRecords(out.Items)
	if err != nil {
		return nil, err
	}

	return &storagemodels.QueryResult{
		Items:            items,
		LastEvaluatedKey: out.LastEvaluatedKey,
	}, nil
}

func unmarshalRecords(raw []map[string]types.AttributeValue) ([]storagemodels.StatusLogRecord, error) {
	records := make([]storagemodels.StatusLogRecord, 0, len(raw))
	for _, item := range raw {
		record, err := unmarshalRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func unmarshalRecord(item map[string]types.AttributeValue) (storagemodels.StatusLogRecord, error) {
	var generic map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status log: %w", err)
	}
	return storagemodels.StatusLogRecord(generic), nil
}
