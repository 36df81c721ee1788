/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package server runs the status log HTTP API with health probes, request
// logging and graceful shutdown.
package server
