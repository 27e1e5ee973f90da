package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"assessment-portal/internal/metrics"
)

const serviceName = "assessment-portal"

// Routes builds the HTTP handler for the whole service.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("req_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(hlog.RemoteAddrHandler("remote_addr"))
	r.Use(middleware.Recoverer)
	r.Use(metrics.HTTPMiddleware(s.registry))

	allowed := s.config.HTTP.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))

	limited := s.rateLimit()

	r.Get("/health", s.HealthCheckHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Route("/children", func(r chi.Router) {
			r.With(limited).Post("/register", s.RegisterChildHandler)
			r.Get("/lookup/{childId}", s.LookupChildHandler)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/start", s.StartSessionHandler)
			r.With(limited).Post("/fail", s.FailSessionHandler)
			r.Post("/end/{sessionId}", s.EndSessionHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(limited).Post("/login", s.AdminLoginHandler)
			r.Post("/logout/{sessionId}", s.AdminLogoutHandler)
			r.Get("/ws", s.ServeWsHandler)

			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware)
				r.Get("/me", s.GetCurrentAdminHandler)
				r.Get("/dashboard", s.DashboardHandler)
				r.Get("/sessions", s.ListSessionsHandler)
				r.Get("/children", s.ListChildrenHandler)
				r.Post("/children", s.AdminCreateChildHandler)
				r.Get("/children/{childId}", s.AdminGetChildHandler)
				r.Put("/children/{childId}", s.AdminUpdateChildHandler)
				r.Put("/children/{childId}/status", s.AdminSetChildStatusHandler)
			})
		})
	})

	return otelhttp.NewHandler(r, serviceName)
}

func (s *Server) rateLimit() func(http.Handler) http.Handler {
	if s.config.HTTP.RateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		s.config.HTTP.RateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByRealIP, httprate.KeyByEndpoint),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
		}),
	)
}
