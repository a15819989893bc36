package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ServeConfig controls the local preview server.
type ServeConfig struct {
	Dir      string // Directory holding the generated pages and viewers.
	Port     int
	Open     bool // Open a browser once listening.
	AllowAll bool // Allow all CORS origins.
}

// NewRouter returns the preview handler: a health check plus static files
// rooted at dir.
func NewRouter(cfg ServeConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Viewers are reloaded often while iterating; never serve stale pages.
	r.Use(middleware.NoCache)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		MaxAge:         300,
	}
	if cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Static files (must be registered after API routes).
	r.Handle("/*", http.FileServer(http.Dir(cfg.Dir)))
	return r
}

// Serve starts the preview server and blocks until ctx is cancelled or the
// listener fails.
func Serve(ctx context.Context, cfg ServeConfig) error {
	addr := fmt.Sprintf(":%d", cfg.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if cfg.Open {
		go OpenBrowser(url)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("surveygen preview listening on %s (serving %s)", url, cfg.Dir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Watch calls rebuild whenever anything inside dirs changes. Bursts of
// events within debounce collapse into one rebuild. Directories that do not
// exist are skipped. Blocks until ctx is cancelled.
func Watch(ctx context.Context, dirs []string, debounce time.Duration, rebuild func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	watched := 0
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("none of %v exist", dirs)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		case <-pending:
			pending = nil
			if err := rebuild(); err != nil {
				log.Printf("watch: rebuild failed: %v", err)
			}
		}
	}
}

// OpenBrowser opens the given URL or file in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
