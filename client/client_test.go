package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bugtrack-simple/models"
)

func TestClient_ErrorResponses(t *testing.T) {
	t.Run("empty error body still yields a status error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(server.Close)

		_, err := New(server.URL).Projects()
		if err == nil {
			t.Fatal("expected an error")
		}
		if strings.Contains(err.Error(), "decoding response") {
			t.Errorf("error body decode leaked into the error: %v", err)
		}
		if !strings.Contains(err.Error(), "503") {
			t.Errorf("expected the status code in the error, got %v", err)
		}
	})

	t.Run("non-json error body falls back to the status text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such page", http.StatusNotFound)
		}))
		t.Cleanup(server.Close)

		_, err := New(server.URL).Bugs("p1")
		var domainErr *models.Error
		if !errors.As(err, &domainErr) {
			t.Fatalf("expected a domain error, got %v", err)
		}
		if domainErr.Kind != models.KindNotFound {
			t.Errorf("expected a not-found error, got kind %v", domainErr.Kind)
		}
		if domainErr.Message != http.StatusText(http.StatusNotFound) {
			t.Errorf("expected the status text message, got %q", domainErr.Message)
		}
	})

	t.Run("json error body keeps the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"status":"error","message":"bug is already closed"}`))
		}))
		t.Cleanup(server.Close)

		_, err := New(server.URL).CloseBug("p1", "b1")
		var domainErr *models.Error
		if !errors.As(err, &domainErr) {
			t.Fatalf("expected a domain error, got %v", err)
		}
		if domainErr.Kind != models.KindConflict {
			t.Errorf("expected a conflict error, got kind %v", domainErr.Kind)
		}
		if domainErr.Message != "bug is already closed" {
			t.Errorf("expected the server message, got %q", domainErr.Message)
		}
	})
}
