package fetch

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFetcher_Fetch(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "kat-fetch-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("payload"))
		case "/missing":
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)

	t.Run("writes the body to the destination", func(t *testing.T) {
		dest := filepath.Join(tmpDir, "data", "nested", "file.bin")

		result := fetcher.Fetch(server.URL+"/ok", dest)
		if !result.Success {
			t.Fatalf("expected success, got error: %v", result.Error)
		}

		data, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("destination not written: %v", err)
		}
		if string(data) != "payload" {
			t.Errorf("expected 'payload', got %q", data)
		}
	})

	t.Run("overwrites an existing destination", func(t *testing.T) {
		dest := filepath.Join(tmpDir, "existing.bin")
		if err := os.WriteFile(dest, []byte("stale contents that are longer"), 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		result := fetcher.Fetch(server.URL+"/ok", dest)
		if !result.Success {
			t.Fatalf("expected success, got error: %v", result.Error)
		}

		data, _ := os.ReadFile(dest)
		if string(data) != "payload" {
			t.Errorf("expected overwrite with 'payload', got %q", data)
		}
	})

	t.Run("non-success status is a failure", func(t *testing.T) {
		dest := filepath.Join(tmpDir, "never.bin")

		result := fetcher.Fetch(server.URL+"/missing", dest)
		if result.Success {
			t.Fatal("expected failure for 404 response")
		}
		if result.Error == nil {
			t.Fatal("expected an error value")
		}
		if _, err := os.Stat(dest); !os.IsNotExist(err) {
			t.Error("destination should not exist after a status failure")
		}
	})

	t.Run("unreachable host is a failure not a crash", func(t *testing.T) {
		dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		dead.Close()

		result := fetcher.Fetch(dead.URL+"/ok", filepath.Join(tmpDir, "dead.bin"))
		if result.Success || result.Error == nil {
			t.Error("expected transport error to surface as a failed result")
		}
	})
}
