/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package handlers implements the read-only status log operations.
//
// Each handler validates its path parameters, issues exactly one call to the
// StatusLogStore and returns an API Gateway proxy envelope:
//
//   - List:    GET /status-logs/{notification_id}
//   - Details: GET /status-logs/{notification_id}/{log_id}
//   - Summary: GET /status-logs/{notification_id}/summary
//
// Missing or empty parameters yield a 400. A store failure, an absent items
// collection or an absent item yields a 500 whose message embeds the cause.
// A request without any path parameters is a routing fault: the handler returns
// errors.ErrMissingParameter instead of an envelope.
package handlers
