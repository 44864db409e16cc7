package customer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventanilla-api/internal/application/customer"
	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

// recordingMetrics sumidero de métricas propio de cada test.
type recordingMetrics struct {
	ports.NopMetrics
	mu       sync.Mutex
	phases   map[string]int
	outcomes map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{phases: map[string]int{}, outcomes: map[string]int{}}
}

func (m *recordingMetrics) ObservePhase(phase string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phases[phase]++
}

func (m *recordingMetrics) IncSearch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func ids(results []dto.CustomerSearchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

// ── Escenario A: paso base por nombre ────────────────────────────────────────

func TestSearch_NombreYApellidoSubcadenaSensibleAMayusculas(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "VELAZQUEZ"})
	require.NoError(t, err)

	assert.Equal(t, []string{"c1", "c3"}, ids(out.Data), "c4 está en minúsculas y no coincide; el orden es el natural del registro")
	assert.Equal(t, len(out.Data), out.TotalCount)
}

func TestSearch_SinPredicadosDevuelveTodoElRegistro(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{DateOfBirth: "1990-01-01", ClientNumber: "X"})
	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalCount)
}

// ── Pasos de acotamiento ─────────────────────────────────────────────────────

func TestSearch_TelefonosSeCombinanConOR(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{
		PrimaryPhone: "5522222222", SecondaryPhone: "5533333333",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids(out.Data))
}

// nilSetRepo devuelve nil en lugar de un conjunto vacío cuando no hay coincidencias.
type nilSetRepo struct{ *memRepo }

func (nilSetRepo) CustomerIDsByPhone(context.Context, []string) (repository.IDSet, error) {
	return nil, nil
}

func (nilSetRepo) CustomerIDsByAddress(context.Context, entity.AddressPredicate) (repository.IDSet, error) {
	return nil, nil
}

func TestSearch_ConjuntoNilDelAdaptadorNoDejaPasarTodo(t *testing.T) {
	uc := customer.NewSearchUseCase(nilSetRepo{seedRegistry()}, nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "ESQUIVEL", PrimaryPhone: "5599999999"})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Equal(t, 0, out.TotalCount)

	out, err = uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "ESQUIVEL", PostalCode: "99999"})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
}

func TestSearch_IdentificacionesSeCombinanConOR(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{
		RFC: "EUVR800101AB1", Passport: "G1234567",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, ids(out.Data))
}

func TestSearch_IdentificacionRequiereTipoCorrecto(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	// El número del IFE de c2 enviado como pasaporte no debe coincidir.
	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{
		FirstName: "ESQUIVEL", Passport: "12345678901234567890",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
	assert.Equal(t, 0, out.TotalCount)
}

func TestSearch_DomicilioExigeMismoRegistro(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	// c1 tiene estado 9 en un domicilio y CP 44100 en otro: no debe coincidir.
	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{
		FirstName: "ESQUIVEL", StateID: "9", PostalCode: "44100",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Data)

	out, err = uc.Search(context.Background(), entity.CustomerSearchFilters{
		FirstName: "ESQUIVEL", StateID: "9", MunicipalityID: "15", PostalCode: "06600",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, ids(out.Data))
}

func TestSearch_CategoriasSeCombinanConAND(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{
		PrimaryPhone: "5511111111",
		RFC:          "EUVR800101AB1",
		StateID:      "9",
		LastName:     "VELAZQUEZ",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, ids(out.Data))

	out, err = uc.Search(context.Background(), entity.CustomerSearchFilters{
		PrimaryPhone: "5544444444",
		RFC:          "EUVR800101AB1",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Data, "teléfono de c5 y RFC de c1 no comparten cliente")
}

func TestSearch_PasosNoPedidosNoSeConsultan(t *testing.T) {
	repo := seedRegistry()
	uc := customer.NewSearchUseCase(repo, nil, 0)

	_, err := uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "LUIS", LastName: "PEREZ"})
	require.NoError(t, err)

	assert.Equal(t, 0, repo.callCount("CustomerIDsByPhone"))
	assert.Equal(t, 0, repo.callCount("CustomerIDsByGovernmentID"))
	assert.Equal(t, 0, repo.callCount("CustomerIDsByAddress"))
}

// ── Enriquecimiento ──────────────────────────────────────────────────────────

func TestSearch_EnriqueceTelefonoRFCYDomicilioPrincipal(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 2)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "VELAZQUEZ"})
	require.NoError(t, err)
	require.Len(t, out.Data, 2)

	c1 := out.Data[0]
	assert.Equal(t, "5511111111", c1.PrimaryPhone)
	require.NotNil(t, c1.RFC)
	assert.Equal(t, "EUVR800101AB1", *c1.RFC)
	assert.Equal(t, "Av. Reforma 10, Juárez, Cuauhtémoc, Ciudad de México 06600", c1.PrimaryAddress)

	c3 := out.Data[1]
	assert.Equal(t, "", c3.PrimaryPhone)
	assert.Nil(t, c3.RFC, "un pasaporte no es RFC")
	assert.Equal(t, "", c3.PrimaryAddress, "sin domicilio principal la línea queda vacía")
}

func TestSearch_DomicilioConComponentesVaciosNoFalla(t *testing.T) {
	uc := customer.NewSearchUseCase(seedRegistry(), nil, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "MORA"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Insurgentes 200, , ,  ", out.Data[0].PrimaryAddress)
}

// ── Fallos ───────────────────────────────────────────────────────────────────

func TestSearch_FalloEnCualquierPasoAbortaLaBusqueda(t *testing.T) {
	ops := []struct {
		op      string
		filters entity.CustomerSearchFilters
	}{
		{"SearchByName", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "VELAZQUEZ"}},
		{"CustomerIDsByPhone", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", PrimaryPhone: "5511111111"}},
		{"CustomerIDsByGovernmentID", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", RFC: "EUVR800101AB1"}},
		{"CustomerIDsByAddress", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", StateID: "9"}},
		{"ListPhones", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "VELAZQUEZ"}},
		{"ListGovernmentIDs", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "VELAZQUEZ"}},
		{"ListAddresses", entity.CustomerSearchFilters{FirstName: "ESQUIVEL", LastName: "VELAZQUEZ"}},
	}
	for _, tc := range ops {
		t.Run(tc.op, func(t *testing.T) {
			repo := seedRegistry()
			cause := errors.New("conexión reiniciada")
			repo.failOn[tc.op] = cause
			metrics := newRecordingMetrics()
			uc := customer.NewSearchUseCase(repo, metrics, 0)

			out, err := uc.Search(context.Background(), tc.filters)

			require.Error(t, err)
			assert.Nil(t, out, "nunca se devuelven resultados parciales")
			assert.ErrorIs(t, err, domain.ErrQueryFailed)
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, 1, metrics.outcomes[customer.OutcomeFailed])
		})
	}
}

func TestSearch_RegistraMetricasPorFase(t *testing.T) {
	metrics := newRecordingMetrics()
	uc := customer.NewSearchUseCase(seedRegistry(), metrics, 0)

	_, err := uc.Search(context.Background(), entity.CustomerSearchFilters{
		FirstName: "ESQUIVEL", PrimaryPhone: "5511111111", RFC: "EUVR800101AB1", StateID: "9",
	})
	require.NoError(t, err)

	for _, phase := range []string{
		ports.PhaseBase, ports.PhasePhone, ports.PhaseGovernmentID,
		ports.PhaseAddress, ports.PhaseEnrichment, ports.PhaseTotal,
	} {
		assert.Equal(t, 1, metrics.phases[phase], "fase %s", phase)
	}
	assert.Equal(t, 1, metrics.outcomes[customer.OutcomeFound])
}

func TestSearch_SinResultadosCuentaComoVacio(t *testing.T) {
	metrics := newRecordingMetrics()
	uc := customer.NewSearchUseCase(seedRegistry(), metrics, 0)

	out, err := uc.Search(context.Background(), entity.CustomerSearchFilters{FirstName: "NADIE", LastName: "NUNCA"})
	require.NoError(t, err)
	assert.NotNil(t, out.Data)
	assert.Equal(t, 0, out.TotalCount)
	assert.Equal(t, 1, metrics.outcomes[customer.OutcomeEmpty])
}
