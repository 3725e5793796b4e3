package accountkit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew_ProdHost(t *testing.T) {
	t.Parallel()

	client, err := New("test-api-key", EnvironmentProd)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := client.V1.t.baseURL(); got != "https://api.collab.land" {
		t.Errorf("expected prod host, got %s", got)
	}
}

func TestNew_QAHost(t *testing.T) {
	t.Parallel()

	client, err := New("test-api-key", EnvironmentQA)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := client.V1.t.baseURL(); got != "https://api-qa.collab.land" {
		t.Errorf("expected QA host, got %s", got)
	}

	if got := client.V2.t.baseURL(); got != "https://api-qa.collab.land" {
		t.Errorf("expected QA host on V2, got %s", got)
	}
}

func TestNew_BaseURLOverride(t *testing.T) {
	t.Parallel()

	// The override wins regardless of environment value.
	client, err := New("test-api-key", Environment("staging"), WithBaseURL("http://localhost:8080/"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := client.V1.t.baseURL(); got != "http://localhost:8080" {
		t.Errorf("expected override host, got %s", got)
	}
}

func TestNew_MissingAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New("", EnvironmentProd)
	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}

	if cfgErr.Field != "apiKey" {
		t.Errorf("expected field=apiKey, got %s", cfgErr.Field)
	}
}

func TestNew_UnknownEnvironment(t *testing.T) {
	t.Parallel()

	_, err := New("test-api-key", Environment("staging"))
	if err == nil {
		t.Fatal("expected error for unknown environment")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}

	if cfgErr.Field != "environment" {
		t.Errorf("expected field=environment, got %s", cfgErr.Field)
	}

	if !strings.Contains(err.Error(), "staging") {
		t.Errorf("expected error to name the bad value, got: %v", err)
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := New("test-api-key", EnvironmentProd, WithBaseURL("not a url"))
	if err == nil {
		t.Fatal("expected error for malformed base URL")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}

	if cfgErr.Field != "baseUrl" {
		t.Errorf("expected field=baseUrl, got %s", cfgErr.Field)
	}
}

func TestNew_IndependentTransports(t *testing.T) {
	t.Parallel()

	client, err := New("test-api-key", EnvironmentProd)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if client.V1 == nil || client.V2 == nil {
		t.Fatal("expected both versioned clients to be built")
	}

	if client.V1.t == client.V2.t {
		t.Error("expected V1 and V2 to own separate transports")
	}

	if client.V1.t.rc == client.V2.t.rc {
		t.Error("expected V1 and V2 to own separate HTTP clients")
	}
}

func TestClient_Config(t *testing.T) {
	t.Parallel()

	client, err := New("test-api-key", EnvironmentQA, WithRequestHeader("X-Custom", "v"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	cfg := client.Config()

	if cfg.APIKey != "test-api-key" {
		t.Errorf("expected apiKey to round-trip, got %s", cfg.APIKey)
	}

	if cfg.Environment != EnvironmentQA {
		t.Errorf("expected environment=qa, got %s", cfg.Environment)
	}

	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}

	// Mutating the copy must not leak into the client.
	cfg.Headers["X-Custom"] = "mutated"
	if client.Config().Headers["X-Custom"] != "v" {
		t.Error("expected Config to return an independent copy")
	}
}

func TestNew_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accounts":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := client.V1.GetSmartAccounts(context.Background(), "bot-token")
			done <- err
		}()
	}

	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent call failed: %v", err)
		}
	}
}
