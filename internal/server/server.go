// Package server wires configuration, logging, metrics, extractors, and the
// HTTP router into a runnable service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	api "github.com/quarrylabs/quarry/internal/api/http"
	"github.com/quarrylabs/quarry/internal/api/middleware"
	"github.com/quarrylabs/quarry/internal/config"
	"github.com/quarrylabs/quarry/internal/extract"
	"github.com/quarrylabs/quarry/internal/logging"
	"github.com/quarrylabs/quarry/internal/monitoring"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	logger  *logging.Logger
}

// New builds a server from configuration.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	engines := map[string]extract.Engine{
		"css":   extract.NewCSSEngine(),
		"xpath": extract.NewXPathEngine(),
	}
	if _, ok := engines[cfg.Extract.Engine]; !ok {
		return nil, fmt.Errorf("unknown extract engine %q", cfg.Extract.Engine)
	}

	opts := []extract.Option{extract.WithLogger(logger.Logger)}
	if cfg.Extract.Sanitize {
		opts = append(opts, extract.WithSanitizer(extract.NewSanitizer()))
	}

	extractors := make(map[string]*extract.Extractor, len(engines))
	for name, engine := range engines {
		extractors[name] = extract.New(engine, opts...)
	}

	metrics := monitoring.NewMetrics()
	handlers := api.NewHandlers(extractors, cfg.Extract.Engine, metrics, logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/extract", handlers.Extract)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	return &Server{
		router: router,
		httpSrv: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// Run starts serving and blocks until the listener stops.
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close drains in-flight requests and shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}
