/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/suparena/statuslogs/handlers"
)

// gatewayErrorBody is what API Gateway answers when the integration itself fails.
const gatewayErrorBody = `{"message":"Internal server error"}`

// Adapt serves fn over HTTP. The request is translated into an API Gateway proxy
// request carrying the named path values; the returned envelope is written back
// as is. An error from fn is answered with 502, like a failed Lambda integration.
func Adapt(logger *slog.Logger, fn handlers.Func, resource string, params ...string) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := ProxyRequest(r, resource, params...)

		resp, err := fn(r.Context(), req)
		if err != nil {
			logger.ErrorContext(r.Context(), "status log handler failed",
				slog.String("resource", resource),
				slog.Any("error", err),
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, gatewayErrorBody)
			return
		}

		WriteProxyResponse(w, resp)
	})
}

// ProxyRequest converts r into the shape an API Gateway proxy integration receives.
func ProxyRequest(r *http.Request, resource string, params ...string) events.APIGatewayProxyRequest {
	pathParameters := make(map[string]string, len(params))
	for _, name := range params {
		if value := r.PathValue(name); value != "" {
			pathParameters[name] = value
		}
	}

	headers := make(map[string]string, len(r.Header))
	multiHeaders := make(map[string][]string, len(r.Header))
	for name, values := range r.Header {
		headers[name] = strings.Join(values, ",")
		multiHeaders[name] = append([]string(nil), values...)
	}

	query := r.URL.Query()
	queryParameters := make(map[string]string, len(query))
	for name, values := range query {
		if len(values) > 0 {
			queryParameters[name] = values[len(values)-1]
		}
	}

	return events.APIGatewayProxyRequest{
		Resource:                        resource,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               multiHeaders,
		QueryStringParameters:           queryParameters,
		MultiValueQueryStringParameters: query,
		PathParameters:                  pathParameters,
		RequestContext: events.APIGatewayProxyRequestContext{
			ResourcePath: resource,
			HTTPMethod:   r.Method,
			Path:         r.URL.Path,
			RequestID:    r.Header.Get("X-Request-Id"),
		},
	}
}

// WriteProxyResponse writes an API Gateway proxy envelope to w.
func WriteProxyResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	for name, values := range resp.MultiValueHeaders {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resp.Body)
}
