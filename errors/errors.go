/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a status log or log collection is absent
	ErrNotFound = errors.New("status log not found")

	// ErrInvalidInput is returned when a required path parameter is missing or empty
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingParameter is returned when the request carries no path parameters at all.
	// It is not mapped to a response envelope; it propagates out of the handler.
	ErrMissingParameter = errors.New("Missing Parameter")

	// ErrStore is matched by every failure reported by the underlying table store
	ErrStore = errors.New("store failure")
)

// NotFoundError represents an absent record or an absent items collection.
type NotFoundError struct {
	// Resource is the human name used in the message, e.g. "Logs" or "StatusLogs".
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found.", e.Resource)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents a missing or empty required parameter
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StoreError wraps a failure returned by the table store client.
type StoreError struct {
	Operation string
	Table     string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStoreError creates a new StoreError
func NewStoreError(operation, table string, err error) error {
	return &StoreError{Operation: operation, Table: table, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStoreError checks if an error came from the table store
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

// AsValidationError extracts the ValidationError from err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
