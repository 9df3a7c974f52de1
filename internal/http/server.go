package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Clark-Hu/movienest/internal/catalog"
	"github.com/Clark-Hu/movienest/internal/config"
	"github.com/Clark-Hu/movienest/internal/view"
)

// Server wires HTTP routing, middleware, and handlers.
type Server struct {
	cfg     config.Config
	catalog *catalog.Catalog
	views   *view.Renderer
	logger  *log.Logger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, cat *catalog.Catalog, views *view.Renderer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	s := &Server{
		cfg:     cfg,
		catalog: cat,
		views:   views,
		logger:  logger,
		router:  r,
	}
	s.httpSrv = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSecs) * time.Second,
	}
	if cfg.RateLimitEnabled {
		r.Use(newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).middleware(s))
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.NotFound(s.handleNotFound)
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/static/*", view.StaticHandler().ServeHTTP)

	s.router.Get("/", s.handleHomeIndex)
	s.router.Route("/Home", func(r chi.Router) {
		r.Get("/", s.handleHomeIndex)
		r.Get("/Index", s.handleHomeIndex)
		r.Get("/Privacy", s.handlePrivacy)
		r.With(middleware.NoCache).Get("/Error", s.handleError)
		r.Get("/Details", s.handleDetails(homeBackURL))
		r.Get("/Details/{id}", s.handleDetails(homeBackURL))
	})
	s.router.Route("/Movie", func(r chi.Router) {
		r.Get("/", s.handleMovieIndex)
		r.Get("/Index", s.handleMovieIndex)
		r.Get("/Details", s.handleDetails(movieBackURL))
		r.Get("/Details/{id}", s.handleDetails(movieBackURL))
	})
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens and serves until Shutdown is called. It returns nil after a
// graceful shutdown and the listener error otherwise.
func (s *Server) Start() error {
	s.logger.Printf("http: listening on %s (%d movies in catalog)", s.httpSrv.Addr, s.catalog.Len())
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests
// until ctx expires. It is safe to call before or while Start runs.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Println("http: shutting down")
	return s.httpSrv.Shutdown(ctx)
}

// ShutdownTimeout is the configured grace period for Shutdown.
func (s *Server) ShutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeoutSecs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.cfg.ShutdownTimeoutSecs) * time.Second
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Movies: s.catalog.Len(),
	})
}
