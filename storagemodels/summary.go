/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "encoding/json"

// TotalNotificationSentField is the summary field holding the number of records examined.
const TotalNotificationSentField = "total_notification_sent"

// SummaryResult aggregates the delivery attempts of one notification.
type SummaryResult struct {
	Total  int
	Counts map[string]int
}

// Summarize tallies records by delivery_status, in order.
func Summarize(records []StatusLogRecord) SummaryResult {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.statusKey()]++
	}
	return SummaryResult{
		Total:  len(records),
		Counts: counts,
	}
}

// Fields flattens the summary into one object. A status literally named
// total_notification_sent overwrites the total, as status fields are merged last.
func (s SummaryResult) Fields() map[string]int {
	fields := make(map[string]int, len(s.Counts)+1)
	fields[TotalNotificationSentField] = s.Total
	for status, count := range s.Counts {
		fields[status] = count
	}
	return fields
}

// MarshalJSON renders the flattened summary.
func (s SummaryResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Fields())
}
