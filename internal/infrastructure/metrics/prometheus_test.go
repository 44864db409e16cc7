package metrics_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
	"github.com/jhoicas/Ventanilla-api/internal/infrastructure/metrics"
)

var _ ports.Metrics = (*metrics.Prometheus)(nil)

func TestPrometheus_RegistrosIndependientes(t *testing.T) {
	a := metrics.NewPrometheus()
	b := metrics.NewPrometheus()

	a.IncSearch("found")
	a.IncSearch("found")
	b.IncSearch("failed")

	n, err := testutil.GatherAndCount(a.Registry(), "ventanilla_customer_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = testutil.GatherAndCount(b.Registry(), "ventanilla_customer_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPrometheus_Handler(t *testing.T) {
	m := metrics.NewPrometheus()
	m.ObservePhase(ports.PhaseBase, 20*time.Millisecond)
	m.IncOnlineCheck("broker", false)
	m.IncCardGate("rejected")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, body, `ventanilla_search_phase_duration_seconds_count{phase="base"} 1`)
	assert.Contains(t, body, `ventanilla_online_checks_total{dependency="broker",healthy="false"} 1`)
	assert.Contains(t, body, `ventanilla_card_gate_total{outcome="rejected"} 1`)
}
