/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package response builds the JSON envelopes returned by the status log handlers.
//
// A success envelope carries status 200 and the payload as its body. An error
// envelope carries the status code and a body of the form
//
//	{"statusCode":400,"error":"Bad Request","message":"..."}
//
// Both carry a JSON content type and permissive CORS headers.
package response
