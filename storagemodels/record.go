/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "fmt"

// UnknownDeliveryStatus is the summary key for records without a delivery_status.
const UnknownDeliveryStatus = "UNKNOWN"

// StatusLogRecord is one delivery attempt as stored. Only the reserved attributes
// are interpreted; everything else is passed through untouched.
type StatusLogRecord map[string]any

// NotificationID returns the partition key value, or "" when absent.
func (r StatusLogRecord) NotificationID() string {
	s, _ := r[NotificationIDAttr].(string)
	return s
}

// LogID returns the sort key value, or "" when absent.
func (r StatusLogRecord) LogID() string {
	s, _ := r[LogIDAttr].(string)
	return s
}

// DeliveryStatus returns the delivery_status attribute and whether it was present.
// Non-string values are rendered with fmt.
func (r StatusLogRecord) DeliveryStatus() (string, bool) {
	v, ok := r[DeliveryStatusAttr]
	if !ok || v == nil {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	return fmt.Sprint(v), true
}

// statusKey is the key a record is counted under in a summary.
func (r StatusLogRecord) statusKey() string {
	if s, ok := r.DeliveryStatus(); ok {
		return s
	}
	return UnknownDeliveryStatus
}
