/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/aws/aws-lambda-go/events"

	"github.com/suparena/statuslogs/datastore"
	"github.com/suparena/statuslogs/errors"
	"github.com/suparena/statuslogs/response"
)

// Path parameter names
const (
	NotificationIDParam = "notification_id"
	LogIDParam          = "log_id"
)

// Handler names accepted by Lookup
const (
	NameList    = "list"
	NameDetails = "details"
	NameSummary = "summary"
)

// Func is the signature shared by every status log handler. It matches what
// lambda.Start expects for API Gateway proxy integrations.
type Func func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Config carries the values the handlers read at invocation time.
type Config struct {
	// TableName is the status log table queried by all handlers.
	TableName string
}

// Handler serves the list, details and summary operations over one StatusLogStore.
// It holds no mutable state and is safe for concurrent use.
type Handler struct {
	store     datastore.StatusLogStore
	tableName string
	logger    *slog.Logger
}

// Option configures a Handler
type Option func(*Handler)

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates a Handler reading from store.
func New(store datastore.StatusLogStore, cfg Config, opts ...Option) *Handler {
	h := &Handler{
		store:     store,
		tableName: cfg.TableName,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Lookup returns the handler registered under name.
func (h *Handler) Lookup(name string) (Func, error) {
	switch name {
	case NameList:
		return h.List, nil
	case NameDetails:
		return h.Details, nil
	case NameSummary:
		return h.Summary, nil
	default:
		return nil, fmt.Errorf("unknown handler %q (want one of %v)", name, Names())
	}
}

// Names lists the registered handler names in sorted order.
func Names() []string {
	names := []string{NameList, NameDetails, NameSummary}
	sort.Strings(names)
	return names
}

// operation describes how one handler reports its failures.
type operation struct {
	name   string
	prefix string
}

var (
	listOp    = operation{name: NameList, prefix: "[ListStatusLogs:List:Error]"}
	detailsOp = operation{name: NameDetails, prefix: "[StatusLogs:Details:Error]"}
	summaryOp = operation{name: NameSummary, prefix: "[StatusLogs:Summary:Error]"}
)

// errorResponse maps a handler error to its envelope. Client input errors become
// 400 with the field message; everything else is a 500 embedding the error text.
func (h *Handler) errorResponse(ctx context.Context, op operation, err error) events.APIGatewayProxyResponse {
	if ve, ok := errors.AsValidationError(err); ok {
		h.logger.WarnContext(ctx, "rejected status log request",
			slog.String("handler", op.name),
			slog.String("field", ve.Field),
		)
		return response.Error(http.StatusBadRequest,
			fmt.Sprintf("%s:%s: %s", op.prefix, http.StatusText(http.StatusBadRequest), ve.Message))
	}

	h.logger.ErrorContext(ctx, "status log request failed",
		slog.String("handler", op.name),
		slog.Bool("not_found", errors.IsNotFound(err)),
		slog.Any("error", err),
	)
	return response.Error(http.StatusInternalServerError, fmt.Sprintf("%s: %v", op.prefix, err))
}

// success encodes payload, falling back to the operation's error envelope when
// the payload cannot be encoded.
func (h *Handler) success(ctx context.Context, op operation, payload any) (events.APIGatewayProxyResponse, error) {
	resp, err := response.Success(payload)
	if err != nil {
		return h.errorResponse(ctx, op, err), nil
	}
	return resp, nil
}
