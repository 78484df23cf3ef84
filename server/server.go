// Package server exposes the planner over HTTP with gin.
package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/metrics"
	"github.com/katalvlaran/routeplanner/planner"
)

// shutdownTimeout bounds how long in-flight requests may take after Start's
// context is cancelled.
const shutdownTimeout = 10 * time.Second

type Server struct {
	router      *gin.Engine
	planner     *planner.Planner
	attractions *catalog.Attractions
	metrics     *metrics.Registry
	logger      *zap.Logger
	origins     []string
}

// Option customizes a Server.
type Option func(*Server)

// WithAllowedOrigins restricts CORS to the given origins. An empty list or
// a "*" entry allows every origin, which is also the default.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// NewServer wires the routes. reg may be nil, in which case /metrics is not
// served and no HTTP metrics are recorded.
func NewServer(p *planner.Planner, attractions *catalog.Attractions, reg *metrics.Registry, logger *zap.Logger, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)
	if logger == nil {
		logger = zap.NewNop()
	}
	if attractions == nil {
		attractions = catalog.NewAttractions()
	}

	s := &Server{
		router:      gin.New(),
		planner:     p,
		attractions: attractions,
		metrics:     reg,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery())
	s.router.Use(cors.New(s.corsConfig()))
	s.router.Use(requestID())
	s.router.Use(accessLog(logger, reg))

	s.setupRoutes()
	return s
}

func (s *Server) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	if len(s.origins) == 0 || slices.Contains(s.origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.origins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}

	return config
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.health)

	v1 := s.router.Group("/v1")
	v1.GET("/cities", s.listCities)
	v1.GET("/cities/:city/distances", s.distancesFrom)
	v1.GET("/cities/:city/reachable", s.reachable)
	v1.GET("/regions", s.listRegions)
	v1.GET("/attractions", s.listAttractions)
	v1.GET("/route", s.routeByQuery)
	v1.POST("/routes", s.routeByBody)
	v1.POST("/routes/batch", s.routeBatch)

	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
