package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
)

// LiveReloadPath is where pages connect for reload notifications.
const LiveReloadPath = "/ws/reload"

// Config holds server configuration.
type Config struct {
	Port       int
	AllowAll   bool // allow all CORS origins on /api (dev mode)
	LiveReload bool
}

// Server serves the site's pages, fragments, assets and JSON API.
type Server struct {
	cfg        Config
	app        *app.App
	logger     *zap.Logger
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over a.
func New(cfg Config, a *app.App, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		app:    a,
		logger: logger,
	}
	if cfg.LiveReload {
		s.hub = NewHub(logger)
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The reload socket is long-lived and stays outside the timeout.
	if s.hub != nil {
		r.Get(LiveReloadPath, s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Route("/api", func(r chi.Router) {
			corsOpts := cors.Options{
				AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
				AllowedMethods: []string{"GET", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}
			if s.cfg.AllowAll {
				corsOpts.AllowedOrigins = []string{"*"}
			}
			r.Use(cors.Handler(corsOpts))
			RegisterAPIRoutes(r, s.app)
		})

		RegisterPageRoutes(r, s.app, s.logger)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Reload tells every connected page to reload. It is a no-op when live
// reload is off.
func (s *Server) Reload() {
	if s.hub != nil {
		s.hub.Broadcast(reloadMessage)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("folio server listening", zap.String("addr", addr), zap.Bool("live_reload", s.hub != nil))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
