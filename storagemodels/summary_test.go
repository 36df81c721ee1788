/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		records  []StatusLogRecord
		expected map[string]int
	}{
		{
			name: "mixed statuses",
			records: []StatusLogRecord{
				{DeliveryStatusAttr: "DELIVERED"},
				{DeliveryStatusAttr: "DELIVERED"},
				{DeliveryStatusAttr: "FAILED"},
			},
			expected: map[string]int{
				TotalNotificationSentField: 3,
				"DELIVERED":                2,
				"FAILED":                   1,
			},
		},
		{
			name:     "empty collection",
			records:  []StatusLogRecord{},
			expected: map[string]int{TotalNotificationSentField: 0},
		},
		{
			name: "missing and null status count as unknown",
			records: []StatusLogRecord{
				{LogIDAttr: "L1"},
				{DeliveryStatusAttr: nil},
				{DeliveryStatusAttr: "SENT"},
			},
			expected: map[string]int{
				TotalNotificationSentField: 3,
				UnknownDeliveryStatus:      2,
				"SENT":                     1,
			},
		},
		{
			name: "non-string status is rendered",
			records: []StatusLogRecord{
				{DeliveryStatusAttr: float64(3)},
			},
			expected: map[string]int{
				TotalNotificationSentField: 1,
				"3":                        1,
			},
		},
		{
			name: "status named like the total overrides it",
			records: []StatusLogRecord{
				{DeliveryStatusAttr: TotalNotificationSentField},
				{DeliveryStatusAttr: "FAILED"},
			},
			expected: map[string]int{
				TotalNotificationSentField: 1,
				"FAILED":                   1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.records).Fields()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSummaryResultMarshalJSON(t *testing.T) {
	summary := Summarize([]StatusLogRecord{
		{DeliveryStatusAttr: "FAILED"},
		{DeliveryStatusAttr: "DELIVERED"},
	})

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"DELIVERED":1,"FAILED":1,"total_notification_sent":2}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}
