/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/statuslogs/storagemodels"
)

// StatusLogStore is the read side of the status-logs table.
type StatusLogStore interface {
	// GetOne performs a point lookup by notification_id and log_id.
	GetOne(ctx context.Context, params *storagemodels.GetParams) (*storagemodels.GetResult, error)

	// Query returns the records of one partition, in store order, one page only.
	Query(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryResult, error)
}
