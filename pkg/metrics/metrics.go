package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes, used as the "outcome" label.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeUserNotFound    = "user_not_found"
	OutcomeInvalidPassword = "invalid_password"
	OutcomeInternalError   = "internal_error"
)

type Metrics struct {
	registry      *prometheus.Registry
	loginAttempts *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	loginAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	registry.MustRegister(loginAttempts)

	return &Metrics{
		registry:      registry,
		loginAttempts: loginAttempts,
	}
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

// LoginAttempts returns the counter for outcome, for tests and diagnostics.
func (m *Metrics) LoginAttempts(outcome string) prometheus.Counter {
	return m.loginAttempts.WithLabelValues(outcome)
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
