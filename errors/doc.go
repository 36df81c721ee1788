/*
Package errors provides semantic error types for the status-log service.

The handlers translate these into response envelopes through one shared mapping:

	var (
	    ErrNotFound         = errors.New("status log not found")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrMissingParameter = errors.New("Missing Parameter")
	    ErrStore            = errors.New("store failure")
	)

Usage:

	result, err := store.GetOne(ctx, params)
	if err != nil {
	    return err // a *StoreError, matches ErrStore
	}
	if result.Item == nil {
	    return errors.NewNotFoundError("StatusLogs", key.String())
	}

ValidationError maps to BAD_REQUEST. NotFoundError and StoreError both map to
INTERNAL_SERVER_ERROR. ErrMissingParameter is never mapped: it is returned to
the invoking runtime as a failed invocation.
*/
package errors
