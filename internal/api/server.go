package api

import (
	"assessment-portal/internal/config"
	"assessment-portal/internal/database"
	"assessment-portal/internal/metrics"
	"assessment-portal/internal/service"
	"assessment-portal/internal/websocket"

	"github.com/prometheus/client_golang/prometheus"
)

type Server struct {
	config    *config.Config
	store     *database.Store
	wsHub     *websocket.Hub
	registry  *prometheus.Registry
	children  *service.ChildService
	sessions  *service.SessionService
	auth      *service.AuthService
	dashboard *service.DashboardService
}

func NewServer(cfg *config.Config, store *database.Store, locator service.Locator, wsHub *websocket.Hub, registry *prometheus.Registry) *Server {
	sessions := service.NewSessionService(store, locator, wsHub, metrics.NewSessions(registry))
	return &Server{
		config:   cfg,
		store:    store,
		wsHub:    wsHub,
		registry: registry,
		children: service.NewChildService(store),
		sessions: sessions,
		auth: service.NewAuthService(store, sessions, service.TokenConfig{
			Secret: cfg.JWT.Secret,
			Issuer: cfg.JWT.Issuer,
			TTL:    cfg.JWT.TTL,
		}),
		dashboard: service.NewDashboardService(store),
	}
}
