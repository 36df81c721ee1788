/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/suparena/statuslogs/errors"
	"github.com/suparena/statuslogs/storagemodels"
)

// Summary counts the status logs of one notification by delivery_status.
// The body is {"total_notification_sent": n, "<status>": count, ...}.
func (h *Handler) Summary(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.PathParameters == nil {
		return events.APIGatewayProxyResponse{}, errors.ErrMissingParameter
	}

	notificationID := req.PathParameters[NotificationIDParam]
	if notificationID == "" {
		return h.errorResponse(ctx, summaryOp, errors.NewValidationError(NotificationIDParam, "Invalid notification_id")), nil
	}

	items, err := h.queryLogs(ctx, summaryOp, notificationID)
	if err != nil {
		return h.errorResponse(ctx, summaryOp, err), nil
	}

	return h.success(ctx, summaryOp, storagemodels.Summarize(items))
}
