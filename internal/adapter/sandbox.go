package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// sandboxPolicy runs the document in an opaque origin: scripts may run but
// cannot reach cookies, storage or any other origin's data.
const sandboxPolicy = "sandbox allow-scripts allow-pointer-lock allow-popups allow-forms allow-modals"

// ErrSandboxNotStarted is returned when content is loaded before Start
var ErrSandboxNotStarted = errors.New("sandbox server not started")

// Sandbox serves a single untrusted HTML document on the loopback interface.
// Each Load publishes the document under a new revision so browsers reload it.
type Sandbox struct {
	mu       sync.RWMutex
	markup   string
	loaded   bool
	revision uint64

	baseURL string
	server  *http.Server
	logger  *slog.Logger
}

// NewSandbox creates a sandbox server; call Start before Load
func NewSandbox(logger *slog.Logger) *Sandbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sandbox{logger: logger}
}

// Start listens on addr (e.g. "127.0.0.1:0") and serves in the background
func (s *Sandbox) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.baseURL = "http://" + ln.Addr().String()
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.server
	s.mu.Unlock()

	s.logger.Info("sandbox listening", "addr", ln.Addr().String())

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("sandbox server error", "error", err)
		}
	}()
	return nil
}

// Shutdown stops the server
func (s *Sandbox) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	srv := s.server
	s.mu.RUnlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Handler returns the HTTP routes
func (s *Sandbox) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/play/{revision}", s.handlePlay)
	return r
}

// Load publishes markup and returns the URL it is served at
func (s *Sandbox) Load(markup string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseURL == "" {
		return "", ErrSandboxNotStarted
	}
	s.markup = markup
	s.loaded = true
	s.revision++
	return s.playURL(s.revision), nil
}

// Clear removes the document; later requests get 410 Gone
func (s *Sandbox) Clear() {
	s.mu.Lock()
	s.markup = ""
	s.loaded = false
	s.mu.Unlock()
}

// BaseURL returns the server root, empty before Start
func (s *Sandbox) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

func (s *Sandbox) playURL(rev uint64) string {
	return s.baseURL + "/play/" + strconv.FormatUint(rev, 10)
}

func (s *Sandbox) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	loaded, rev := s.loaded, s.revision
	s.mu.RUnlock()

	if !loaded {
		http.Error(w, "nothing is playing", http.StatusGone)
		return
	}
	http.Redirect(w, r, "/play/"+strconv.FormatUint(rev, 10), http.StatusFound)
}

func (s *Sandbox) handlePlay(w http.ResponseWriter, r *http.Request) {
	rev, err := strconv.ParseUint(chi.URLParam(r, "revision"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	loaded, current, markup := s.loaded, s.revision, s.markup
	s.mu.RUnlock()

	if !loaded {
		http.Error(w, "nothing is playing", http.StatusGone)
		return
	}
	if rev != current {
		// Old tabs follow the latest revision
		http.Redirect(w, r, "/play/"+strconv.FormatUint(current, 10), http.StatusFound)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Security-Policy", sandboxPolicy)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "no-referrer")
	_, _ = w.Write([]byte(markup))
}

func (s *Sandbox) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("sandbox request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
