/*
Package storagemodels defines the data structures shared by the stores and handlers.

Key Types:

StatusLogRecord:
One delivery attempt, kept semi-structured so unknown attributes pass through:

	record := StatusLogRecord{
	    "notification_id": "N1",
	    "log_id":          "L1",
	    "delivery_status": "DELIVERED",
	}

QueryParams and GetParams:
Parameters for the two store operations:

	params := NewStatusLogQuery("status-logs", "N1")
	get := &GetParams{TableName: "status-logs", Key: StatusLogKey{NotificationID: "N1", LogID: "L1"}}

QueryResult and GetResult:
A nil Items slice or a nil Item signals that the store returned nothing at all,
which the handlers escalate as a fault. An empty Items slice is a valid result.

SummaryResult:
Counts by delivery_status, rendered flat alongside total_notification_sent.
*/
package storagemodels
