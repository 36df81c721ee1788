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

// Details returns the single status log addressed by the notification_id and
// log_id path parameters. A lookup miss is answered with a 500.
func (h *Handler) Details(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.PathParameters == nil {
		return events.APIGatewayProxyResponse{}, errors.ErrMissingParameter
	}

	key := storagemodels.StatusLogKey{
		NotificationID: req.PathParameters[NotificationIDParam],
		LogID:          req.PathParameters[LogIDParam],
	}
	if key.NotificationID == "" || key.LogID == "" {
		field := NotificationIDParam
		if key.NotificationID != "" {
			field = LogIDParam
		}
		return h.errorResponse(ctx, detailsOp, errors.NewValidationError(field, `"Invalid parameter"`)), nil
	}

	h.logger.DebugContext(ctx, "fetching status log",
		slog.String("handler", detailsOp.name),
		slog.String("key", key.String()),
	)

	result, err := h.store.GetOne(ctx, &storagemodels.GetParams{
		TableName: h.tableName,
		Key:       key,
	})
	if err != nil {
		return h.errorResponse(ctx, detailsOp, err), nil
	}
	if result == nil || result.Item == nil {
		return h.errorResponse(ctx, detailsOp, errors.NewNotFoundError("StatusLogs", key.String())), nil
	}

	return h.success(ctx, detailsOp, result.Item)
}
