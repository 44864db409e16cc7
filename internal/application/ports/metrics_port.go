package ports

import "time"

// Fases medidas por el orquestador de búsqueda.
const (
	PhaseBase         = "base"
	PhasePhone        = "phone"
	PhaseGovernmentID = "government_id"
	PhaseAddress      = "address"
	PhaseEnrichment   = "enrichment"
	PhaseTotal        = "total"
)

// Metrics sumidero de métricas inyectado por proceso. Cada despliegue (o test) usa su propia instancia;
// no existe estado global de métricas.
type Metrics interface {
	ObservePhase(phase string, d time.Duration)
	IncSearch(outcome string)
	IncOnlineCheck(dependency string, healthy bool)
	IncCardGate(outcome string)
}

// NopMetrics implementación vacía para tests y para cuando no se exponen métricas.
type NopMetrics struct{}

func (NopMetrics) ObservePhase(string, time.Duration) {}
func (NopMetrics) IncSearch(string)                   {}
func (NopMetrics) IncOnlineCheck(string, bool)        {}
func (NopMetrics) IncCardGate(string)                 {}
