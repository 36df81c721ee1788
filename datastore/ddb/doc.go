/*
Package ddb provides a DynamoDB implementation of the StatusLogStore interface.

The table is keyed by notification_id (partition) and log_id (sort):

	store, err := ddb.NewDynamodbDataStore(ctx, ddb.Settings{
	    Region:    "us-east-1",
	    TableName: "status-logs",
	})

	page, err := store.Query(ctx, storagemodels.NewStatusLogQuery("", "N1"))

Any client satisfying API can be injected with New, which is how the tests run
against an in-memory DynamoDB.

Only one Query page is read. When DynamoDB reports a LastEvaluatedKey the
result's HasMore is true and the remaining records are not fetched.
*/
package ddb
