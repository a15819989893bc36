package site

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRouterHealthz(t *testing.T) {
	r := NewRouter(ServeConfig{Dir: t.TempDir()})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRouterServesPages(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "viewers", "a_ours"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "viewers", "a_ours", "index.html"), []byte("viewer a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "results.html"), []byte("results"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(NewRouter(ServeConfig{Dir: dir}))
	defer srv.Close()

	for path, want := range map[string]string{
		"/results.html":    "results",
		"/viewers/a_ours/": "viewer a",
	} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK || string(body) != want {
			t.Errorf("GET %s = %d %q, want 200 %q", path, resp.StatusCode, body, want)
		}
		if resp.Header.Get("Cache-Control") == "" {
			t.Errorf("GET %s: missing Cache-Control header", path)
		}
	}

	resp, err := http.Get(srv.URL + "/missing.html")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing page status = %d, want 404", resp.StatusCode)
	}
}

func TestWatchRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	rebuilt := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{dir, filepath.Join(dir, "absent")}, 20*time.Millisecond, func() error {
			calls.Add(1)
			select {
			case rebuilt <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher time to register before touching the dir.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	n := 0
	for {
		select {
		case <-rebuilt:
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch returned %v", err)
			}
			if calls.Load() < 1 {
				t.Error("rebuild was not called")
			}
			return
		case <-tick.C:
			n++
			if err := os.Mkdir(filepath.Join(dir, "new_"+strconv.Itoa(n)+"_ours"), 0o755); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for rebuild")
		}
	}
}

func TestWatchNoDirs(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, time.Millisecond, func() error { return nil })
	if err == nil {
		t.Error("expected error when no directory exists")
	}
}
