package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus implementa ports.Metrics sobre un registro propio del proceso.
type Prometheus struct {
	registry      *prometheus.Registry
	phaseDuration *prometheus.HistogramVec
	searches      *prometheus.CounterVec
	onlineChecks  *prometheus.CounterVec
	cardGate      *prometheus.CounterVec
}

// NewPrometheus registra las métricas de ventanilla en un registro nuevo.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Prometheus{
		registry: reg,
		phaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ventanilla_search_phase_duration_seconds",
			Help:    "Duración de cada paso de la búsqueda de clientes",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"phase"}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ventanilla_customer_searches_total",
			Help: "Búsquedas de clientes por resultado (found, empty, failed)",
		}, []string{"outcome"}),
		onlineChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ventanilla_online_checks_total",
			Help: "Verificaciones del modo en línea por dependencia y estado",
		}, []string{"dependency", "healthy"}),
		cardGate: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ventanilla_card_gate_total",
			Help: "Decisiones de la compuerta de selección de tarjeta",
		}, []string{"outcome"}),
	}
}

func (p *Prometheus) ObservePhase(phase string, d time.Duration) {
	p.phaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (p *Prometheus) IncSearch(outcome string) {
	p.searches.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) IncOnlineCheck(dependency string, healthy bool) {
	p.onlineChecks.WithLabelValues(dependency, strconv.FormatBool(healthy)).Inc()
}

func (p *Prometheus) IncCardGate(outcome string) {
	p.cardGate.WithLabelValues(outcome).Inc()
}

// Handler expone el registro en formato de scrape.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry registro subyacente.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
