/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package httpapi serves the status log handlers over net/http so they can run
// outside Lambda. Requests are converted to API Gateway proxy events, which keeps
// the handlers independent of the transport.
package httpapi
