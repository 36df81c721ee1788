package testmodels

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

type StatusLog struct {

	// Notification the delivery attempt belongs to.
	// Required: true
	NotificationID string `dynamodbav:"notification_id" json:"notification_id"`

	// Unique identifier of the delivery attempt.
	// Required: true
	LogID string `dynamodbav:"log_id" json:"log_id"`

	// Outcome of the delivery attempt.
	DeliveryStatus string `dynamodbav:"delivery_status,omitempty" json:"delivery_status,omitempty"`

	// Delivery channel, e.g. email or sms.
	Channel string `dynamodbav:"channel,omitempty" json:"channel,omitempty"`

	// Timestamp when the attempt was made.
	// Format: date-time
	CreatedAt strfmt.DateTime `dynamodbav:"-" json:"created_at"`
}

// Item renders the status log as a DynamoDB item, created_at as an ISO 8601 string.
func (s StatusLog) Item() (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return nil, err
	}
	item["created_at"] = &types.AttributeValueMemberS{Value: s.CreatedAt.String()}
	return item, nil
}
