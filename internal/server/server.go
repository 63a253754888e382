// Package server exposes the storefront's HTTP surface: order submission,
// health, service description and metrics.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/config"
	"github.com/alfat81/fto/internal/order"
)

const version = "1.0.0"

// OrderRelay is the upstream notification sink. A nil relay means the
// service runs without Telegram configuration and rejects submissions with
// a configuration error.
type OrderRelay interface {
	SendOrder(ctx context.Context, o order.Order, orderID string) error
}

type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	relay   OrderRelay
	metrics *Metrics
}

func New(cfg *config.Config, relay OrderRelay, logger *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		relay:   relay,
		metrics: NewMetrics(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID())
	r.Use(Logging(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/api/order", s.handleOrder)
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleRoot)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	return r
}
