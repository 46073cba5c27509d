package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveLogin(t *testing.T) {
	m := New()

	m.ObserveLogin(OutcomeSuccess)
	m.ObserveLogin(OutcomeSuccess)
	m.ObserveLogin(OutcomeInvalidPassword)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoginAttempts(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts(OutcomeInvalidPassword)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LoginAttempts(OutcomeUserNotFound)))
}

func TestObserveLogin_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveLogin(OutcomeSuccess) })
}

func TestHandler_ExposesCounter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	m.ObserveLogin(OutcomeInternalError)

	router := gin.New()
	router.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `login_attempts_total{outcome="internal_error"} 1`)
}
