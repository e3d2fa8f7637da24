package server

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/opdnav/opdnav"
	"github.com/opdnav/opdnav/metrics"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the directory over HTTP.
type Server struct {
	dir    *opdnav.Directory
	logger *slog.Logger
	tmpl   *template.Template
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates a server over an opened directory.
func New(dir *opdnav.Directory, opts ...Option) (*Server, error) {
	if dir == nil {
		return nil, ErrDirectoryRequired
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		dir:    dir,
		logger: slog.Default(),
		tmpl:   tmpl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler builds the route table wrapped in access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/aec_index.html", s.handleAEC)
	mux.HandleFunc("/index.html", s.handlePGI)
	mux.HandleFunc("/test", s.handleTest)
	mux.Handle("/metrics", metrics.Handler())
	return accessLog(s.logger)(mux)
}

// ListenAndServe serves until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
