/*
Package datastore defines the store interface the status-log handlers read through.

	type StatusLogStore interface {
	    GetOne(ctx context.Context, params *storagemodels.GetParams) (*storagemodels.GetResult, error)
	    Query(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryResult, error)
	}

Implementations:
  - ddb: DynamoDB implementation
  - mock: In-memory mock implementation for testing

Both operations are thin pass-throughs: no retries, no pagination, no caching.
*/
package datastore
