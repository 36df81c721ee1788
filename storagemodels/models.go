/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute names of the status-logs table.
const (
	// NotificationIDAttr is the partition key.
	NotificationIDAttr = "notification_id"
	// LogIDAttr is the sort key.
	LogIDAttr = "log_id"
	// DeliveryStatusAttr holds the delivery outcome label of one attempt.
	DeliveryStatusAttr = "delivery_status"
)

// StatusLogKey is the full primary key of one delivery attempt.
type StatusLogKey struct {
	NotificationID string `dynamodbav:"notification_id"`
	LogID          string `dynamodbav:"log_id"`
}

// String renders the key for logs and error details.
func (k StatusLogKey) String() string {
	return k.NotificationID + "|" + k.LogID
}

// QueryParams defines parameters for a partition-key Query.
type QueryParams struct {
	// TableName is the DynamoDB table name. Stores fall back to their own table when empty.
	TableName string
	// PartitionKey is the partition key attribute name, normally NotificationIDAttr.
	PartitionKey string
	// PartitionValue is the value the partition key must equal.
	PartitionValue string
}

// NewStatusLogQuery builds the query for every attempt of one notification.
func NewStatusLogQuery(tableName, notificationID string) *QueryParams {
	return &QueryParams{
		TableName:      tableName,
		PartitionKey:   NotificationIDAttr,
		PartitionValue: notificationID,
	}
}

// GetParams defines parameters for a point lookup.
type GetParams struct {
	// TableName is the DynamoDB table name. Stores fall back to their own table when empty.
	TableName string
	Key       StatusLogKey
}

// QueryResult is a single page of records returned by a Query.
type QueryResult struct {
	// Items is nil when the store returned no items collection at all.
	// An empty, non-nil slice means the partition holds no records.
	Items []StatusLogRecord
	// LastEvaluatedKey is set when the store holds more records than the page returned.
	LastEvaluatedKey map[string]types.AttributeValue
}

// HasMore reports whether the store truncated the result.
func (r *QueryResult) HasMore() bool {
	return len(r.LastEvaluatedKey) > 0
}

// GetResult is the outcome of a point lookup.
type GetResult struct {
	// Item is nil when no record matches the key.
	Item StatusLogRecord
}
