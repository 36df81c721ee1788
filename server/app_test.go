/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/suparena/statuslogs/config"
	"github.com/suparena/statuslogs/datastore/mock"
	"github.com/suparena/statuslogs/storagemodels"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.TableName = "status-logs"
	cfg.HTTPAddr = pickLocalAddr(t)
	cfg.ShutdownTimeout = 2 * time.Second
	return cfg
}

func TestNewValidatesInputs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mock.New()

	cfg := testConfig(t)
	if _, err := New(cfg, nil, logger); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := New(cfg, store, nil); err == nil {
		t.Fatal("expected error for nil logger")
	}

	missingTable := cfg
	missingTable.TableName = ""
	if _, err := New(missingTable, store, logger); err == nil {
		t.Fatal("expected error for missing table name")
	}
}

func TestStartServeAndShutdown(t *testing.T) {
	cfg := testConfig(t)

	store := mock.New()
	store.Put(storagemodels.StatusLogRecord{"notification_id": "N1", "log_id": "L1", "delivery_status": "DELIVERED"})

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, nil))
	application, err := New(cfg, store, logger)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- application.Start()
	}()

	baseURL := "http://" + cfg.HTTPAddr
	waitForHealthz(t, baseURL)

	resp, err := http.Get(baseURL + "/readyz")
	if err != nil {
		t.Fatalf("readyz request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz status mismatch: got=%d", resp.StatusCode)
	}

	resp, err = http.Get(baseURL + "/status-logs/N1/summary")
	if err != nil {
		t.Fatalf("summary request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary status mismatch: got=%d body=%s", resp.StatusCode, body)
	}
	if string(body) != `{"DELIVERED":1,"total_notification_sent":1}` {
		t.Fatalf("summary body mismatch: %s", body)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("shutdown app: %v", err)
	}

	select {
	case err := <-serverErrCh:
		if err != nil {
			t.Fatalf("server returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}

func TestShutdownNilContext(t *testing.T) {
	application, err := New(testConfig(t), mock.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := application.Shutdown(nil); err == nil {
		t.Fatal("expected error for nil context")
	}
}

func TestReadyzBeforeStart(t *testing.T) {
	application, err := New(testConfig(t), mock.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status mismatch: got=%d want=%d", rec.Code, http.StatusServiceUnavailable)
	}

	rec = httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("healthz POST status mismatch: got=%d", rec.Code)
	}
}

func TestRequestLoggingMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuffer, nil))

	application, err := New(testConfig(t), mock.New(), logger)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status-logs/N7", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status mismatch: got=%d", rec.Code)
	}

	logs := logBuffer.String()
	for _, want := range []string{`"msg":"http request"`, `"status":200`, `"notification_id":"N7"`, `"path":"/status-logs/N7"`} {
		if !strings.Contains(logs, want) {
			t.Fatalf("expected %s in logs: %s", want, logs)
		}
	}
}

func TestNotificationIDFromPath(t *testing.T) {
	testCases := map[string]string{
		"/status-logs/N1":         "N1",
		"/status-logs/N1/summary": "N1",
		"/status-logs/N1/L1":      "N1",
		"/status-logs":            "",
		"/healthz":                "",
		"/":                       "",
	}
	for path, want := range testCases {
		if got := notificationIDFromPath(path); got != want {
			t.Errorf("notificationIDFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func waitForHealthz(t *testing.T, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}

		if time.Now().After(deadline) {
			t.Fatalf("healthz did not become ready before deadline")
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func pickLocalAddr(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen for local addr: %v", err)
	}
	defer listener.Close()

	return listener.Addr().String()
}
