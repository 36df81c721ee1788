/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/suparena/statuslogs/handlers"
)

// Route patterns served by NewRouter. The literal summary segment takes
// precedence over the log_id wildcard.
const (
	ListPattern    = "GET /status-logs/{notification_id}"
	SummaryPattern = "GET /status-logs/{notification_id}/summary"
	DetailsPattern = "GET /status-logs/{notification_id}/{log_id}"
)

// NewRouter exposes the status log handlers over plain HTTP.
func NewRouter(h *handlers.Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(ListPattern, Adapt(logger, h.List, "/status-logs/{notification_id}", handlers.NotificationIDParam))
	mux.Handle(SummaryPattern, Adapt(logger, h.Summary, "/status-logs/{notification_id}/summary", handlers.NotificationIDParam))
	mux.Handle(DetailsPattern, Adapt(logger, h.Details, "/status-logs/{notification_id}/{log_id}", handlers.NotificationIDParam, handlers.LogIDParam))
	return mux
}
