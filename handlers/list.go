/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/suparena/statuslogs/errors"
	"github.com/suparena/statuslogs/storagemodels"
)

// List returns every status log of the notification named by the
// notification_id path parameter, in store order.
func (h *Handler) List(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.PathParameters == nil {
		return events.APIGatewayProxyResponse{}, errors.ErrMissingParameter
	}

	notificationID := req.PathParameters[NotificationIDParam]
	if notificationID == "" {
		return h.errorResponse(ctx, listOp, errors.NewValidationError(NotificationIDParam, "Invalid notification_id")), nil
	}

	items, err := h.queryLogs(ctx, listOp, notificationID)
	if err != nil {
		return h.errorResponse(ctx, listOp, err), nil
	}

	return h.success(ctx, listOp, items)
}

// queryLogs runs the single partition query shared by List and Summary.
// A result without an items collection is reported as not found.
func (h *Handler) queryLogs(ctx context.Context, op operation, notificationID string) ([]storagemodels.StatusLogRecord, error) {
	h.logger.DebugContext(ctx, "querying status logs",
		slog.String("handler", op.name),
		slog.String("notification_id", notificationID),
	)

	result, err := h.store.Query(ctx, storagemodels.NewStatusLogQuery(h.tableName, notificationID))
	if err != nil {
		return nil, err
	}
	if result == nil || result.Items == nil {
		return nil, errors.NewNotFoundError("Logs", notificationID)
	}

	if result.HasMore() {
		h.logger.WarnContext(ctx, "status log query truncated to first page",
			slog.String("handler", op.name),
			slog.String("notification_id", notificationID),
			slog.Int("items", len(result.Items)),
		)
	}
	return result.Items, nil
}
