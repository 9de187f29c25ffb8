// Package server serves the landing site over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/internal/pages"
	"github.com/maestrohq/landing/internal/site"
)

//go:embed static
var staticFS embed.FS

// Server is the landing HTTP server.
type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *overrides.Store
	handler http.Handler
	routes  *pages.PageNode
}

// New builds the router: middleware, static assets, health check and the
// landing pages.
func New(cfg *config.Config, store *overrides.Store, log *zap.Logger) (*Server, error) {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(withRequestID)
	r.Use(accessLog(log))
	r.Use(recoverer(log))

	// assets hosted elsewhere are not served here
	if strings.HasPrefix(cfg.Site.Assets, "/") {
		static, err := fs.Sub(staticFS, "static")
		if err != nil {
			return nil, fmt.Errorf("failed to open static assets: %w", err)
		}
		prefix := strings.TrimSuffix(cfg.Site.Assets, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.FS(static))))
	}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	routes, err := site.Mount(pages.NewChiRouter(r), site.Deps{Config: cfg, Store: store, Log: log})
	if err != nil {
		return nil, fmt.Errorf("failed to mount pages: %w", err)
	}
	log.Debug("pages mounted", zap.Stringer("routes", routes))
	return &Server{cfg: cfg, log: log, store: store, handler: r, routes: routes}, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Routes returns the mounted page tree.
func (s *Server) Routes() *pages.PageNode { return s.routes }

// Run serves on the configured address until ctx is done, then shuts down
// gracefully. The override file is watched while serving when configured.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		if !s.cfg.Overrides.Watch {
			return
		}
		if err := s.store.Watch(ctx); err != nil {
			s.log.Error("override watch stopped", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Handler:  s.handler,
		ErrorLog: zap.NewStdLog(s.log),
	}
	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		serveErr <- srv.Serve(ln)
	}()

	var err error
	select {
	case err = <-serveErr:
	case <-ctx.Done():
		shutdownCtx, done := context.WithTimeout(context.Background(), s.cfg.GetShutdownTimeout())
		defer done()
		s.log.Info("shutting down")
		err = srv.Shutdown(shutdownCtx)
		if serr := <-serveErr; !errors.Is(serr, http.ErrServerClosed) && err == nil {
			err = serr
		}
	}
	cancel()
	<-watchDone
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
