package metrics

import "github.com/prometheus/client_golang/prometheus"

// Sessions counts ledger transitions. A nil *Sessions records nothing.
type Sessions struct {
	opened   *prometheus.CounterVec
	closed   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewSessions(reg prometheus.Registerer) *Sessions {
	s := &Sessions{
		opened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_sessions_opened_total",
			Help: "Sessions recorded, by principal kind and outcome.",
		}, []string{"kind", "status"}),
		closed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_sessions_closed_total",
			Help: "Sessions closed, by principal kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_session_duration_seconds",
			Help:    "Duration of closed sessions in seconds.",
			Buckets: []float64{30, 60, 300, 600, 1800, 3600, 7200, 14400, 43200},
		}, []string{"kind"}),
	}
	reg.MustRegister(s.opened, s.closed, s.duration)
	return s
}

func (s *Sessions) SessionOpened(kind, status string) {
	if s == nil {
		return
	}
	s.opened.WithLabelValues(kind, status).Inc()
}

func (s *Sessions) SessionClosed(kind string, durationSeconds int64) {
	if s == nil {
		return
	}
	s.closed.WithLabelValues(kind).Inc()
	s.duration.WithLabelValues(kind).Observe(float64(durationSeconds))
}
