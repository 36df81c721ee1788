/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// ErrorBody is the payload of every error envelope.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// DefaultHeaders are set on every envelope.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
	}
}

// Success wraps payload in a 200 envelope. The body is the payload itself.
func Success(payload any) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("encode success body: %w", err)
	}
	return build(http.StatusOK, body), nil
}

// Error builds an error envelope for status with a human readable message.
func Error(status int, message string) events.APIGatewayProxyResponse {
	body, err := json.Marshal(ErrorBody{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    message,
	})
	if err != nil {
		// ErrorBody holds only ints and strings
		panic(err)
	}
	return build(status, body)
}

func build(status int, body []byte) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    DefaultHeaders(),
		Body:       string(body),
	}
}
