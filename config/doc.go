/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the status log service configuration from a .env file,
// an optional YAML file and environment variables.
package config
