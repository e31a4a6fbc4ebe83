// SPDX-License-Identifier: MIT

// Package server exposes an Airspace over a small read-only HTTP/JSON API.
//
//	GET /health
//	GET /metrics
//	GET /v1/stats
//	GET /v1/nodes/:name
//	GET /v1/closest?x=&y=
//	GET /v1/reachable/:name
//	GET /v1/route?from=&to=[&format=geojson]
//	GET /v1/within?minx=&miny=&maxx=&maxy=
//	GET /v1/facilities
//	GET /v1/facilities/:code
//	GET /v1/facility-route?from=&to=[&format=geojson]
//
// For geodesic data x is longitude and y is latitude.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/airnav/airspace"
)

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to airspace queries.
type Server struct {
	air     *airspace.Airspace
	logger  *slog.Logger
	origins []string
	reg     *prometheus.Registry
	metrics *metrics
	engine  *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger. A nil logger silences it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = l
	}
}

// WithAllowedOrigins restricts CORS to the given origins.
// Without it every origin is allowed.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// New builds the router. Each Server owns its own metrics registry.
func New(air *airspace.Airspace, opts ...Option) *Server {
	s := &Server{
		air:    air,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		reg:    prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.reg)
	s.engine = s.routes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Registry returns the Prometheus registry served on /metrics.
func (s *Server) Registry() *prometheus.Registry { return s.reg }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger))

	cfg := cors.DefaultConfig()
	if len(s.origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.origins
	}
	cfg.ExposeHeaders = []string{headerRequestID}
	r.Use(cors.New(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.GET("/stats", s.handleStats)
	v1.GET("/nodes/:name", s.handleNode)
	v1.GET("/closest", s.handleClosest)
	v1.GET("/reachable/:name", s.handleReachable)
	v1.GET("/route", s.handleRoute)
	v1.GET("/within", s.handleWithin)
	v1.GET("/facilities", s.handleFacilities)
	v1.GET("/facilities/:code", s.handleFacility)
	v1.GET("/facility-route", s.handleFacilityRoute)

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server: listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("server: shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
