/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvConfigFile      = "STATUS_LOGS_CONFIG_FILE"
	EnvTableName       = "DDB_STATUS_LOGS_TABLE_NAME"
	EnvRegion          = "AWS_REGION"
	EnvAccessKey       = "AWS_ACCESS_KEY"
	EnvSecretKey       = "AWS_SECRET_KEY"
	EnvEndpoint        = "DDB_ENDPOINT"
	EnvHTTPAddr        = "STATUS_LOGS_HTTP_ADDR"
	EnvShutdownTimeout = "STATUS_LOGS_SHUTDOWN_TIMEOUT"
	EnvLogLevel        = "STATUS_LOGS_LOG_LEVEL"
	EnvLogFormat       = "STATUS_LOGS_LOG_FORMAT"
	EnvHandler         = "STATUS_LOGS_HANDLER"
)

const (
	defaultHTTPAddr        = "127.0.0.1:8080"
	defaultShutdownTimeout = 5 * time.Second
	defaultLogFormat       = LogFormatText
	defaultLogLevel        = slog.LevelInfo
)

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config holds the process configuration shared by the HTTP server, the Lambda
// entry point and the invoke command.
type Config struct {
	TableName       string
	Region          string
	AccessKey       string
	SecretKey       string
	Endpoint        string
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogFormat       LogFormat
	LogLevel        slog.Level
	// Handler selects the operation served by the Lambda entry point.
	Handler string
}

// fileConfig is the YAML layout of the optional config file.
type fileConfig struct {
	TableName       string `yaml:"table_name"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	HTTPAddr        string `yaml:"http_addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	Handler         string `yaml:"handler"`
}

// Load builds the configuration from, in increasing precedence: defaults, the
// YAML file named by STATUS_LOGS_CONFIG_FILE, and environment variables. A .env
// file in the working directory is loaded first when present.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit YAML file. An empty path falls back to
// STATUS_LOGS_CONFIG_FILE.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path = strings.TrimSpace(path); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Default() Config {
	return Config{
		HTTPAddr:        defaultHTTPAddr,
		ShutdownTimeout: defaultShutdownTimeout,
		LogFormat:       defaultLogFormat,
		LogLevel:        defaultLogLevel,
	}
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", EnvConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s %q: %w", EnvConfigFile, path, err)
	}

	setString(&c.TableName, fc.TableName)
	setString(&c.Region, fc.Region)
	setString(&c.Endpoint, fc.Endpoint)
	setString(&c.HTTPAddr, fc.HTTPAddr)
	setString(&c.Handler, fc.Handler)

	if fc.ShutdownTimeout != "" {
		parsed, err := parseTimeout("shutdown_timeout", fc.ShutdownTimeout)
		if err != nil {
			return err
		}
		c.ShutdownTimeout = parsed
	}
	if fc.LogLevel != "" {
		parsed, err := parseLogLevel(fc.LogLevel)
		if err != nil {
			return err
		}
		c.LogLevel = parsed
	}
	if fc.LogFormat != "" {
		parsed, err := parseLogFormat(fc.LogFormat)
		if err != nil {
			return err
		}
		c.LogFormat = parsed
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.TableName, os.Getenv(EnvTableName))
	setString(&c.Region, os.Getenv(EnvRegion))
	setString(&c.AccessKey, os.Getenv(EnvAccessKey))
	setString(&c.SecretKey, os.Getenv(EnvSecretKey))
	setString(&c.Endpoint, os.Getenv(EnvEndpoint))
	setString(&c.HTTPAddr, os.Getenv(EnvHTTPAddr))
	setString(&c.Handler, os.Getenv(EnvHandler))

	if timeout := strings.TrimSpace(os.Getenv(EnvShutdownTimeout)); timeout != "" {
		parsed, err := parseTimeout(EnvShutdownTimeout, timeout)
		if err != nil {
			return err
		}
		c.ShutdownTimeout = parsed
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		parsed, err := parseLogLevel(level)
		if err != nil {
			return err
		}
		c.LogLevel = parsed
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		parsed, err := parseLogFormat(format)
		if err != nil {
			return err
		}
		c.LogFormat = parsed
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.TableName) == "" {
		return fmt.Errorf("validate config: %s is required", EnvTableName)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("validate config: %s must be > 0", EnvShutdownTimeout)
	}

	switch c.LogLevel {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
	default:
		return fmt.Errorf("validate config: unsupported %s %q", EnvLogLevel, c.LogLevel.String())
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf(
			"validate config: unsupported %s %q (allowed: %q, %q)",
			EnvLogFormat,
			c.LogFormat,
			LogFormatText,
			LogFormatJSON,
		)
	}

	return nil
}

func setString(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func parseTimeout(name, input string) (time.Duration, error) {
	parsed, err := time.ParseDuration(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("parse %s: value must be > 0", name)
	}
	return parsed, nil
}

func parseLogLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf(
			"parse %s: unsupported value %q (allowed: %q, %q, %q, %q)",
			EnvLogLevel,
			input,
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		)
	}
}

func parseLogFormat(input string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(LogFormatText):
		return LogFormatText, nil
	case string(LogFormatJSON):
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf(
			"parse %s: unsupported value %q (allowed: %q, %q)",
			EnvLogFormat,
			input,
			LogFormatText,
			LogFormatJSON,
		)
	}
}
