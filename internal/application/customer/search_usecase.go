package customer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/customersearch"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

// Resultados de búsqueda reportados a métricas.
const (
	OutcomeFound  = "found"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
)

const defaultEnrichConcurrency = 8

// SearchUseCase orquesta la búsqueda de clientes: paso base por nombre, acotamiento por teléfono,
// identificación y domicilio (intersección de conjuntos) y enriquecimiento de cada candidato.
//
// Precondición: los filtros ya pasaron customersearch.Validate. El orquestador no vuelve a exigir
// el mínimo de filtros.
type SearchUseCase struct {
	repo              repository.CustomerRepository
	metrics           ports.Metrics
	tracer            trace.Tracer
	enrichConcurrency int
}

// NewSearchUseCase construye el orquestador. enrichConcurrency <= 0 usa el valor por defecto.
func NewSearchUseCase(repo repository.CustomerRepository, metrics ports.Metrics, enrichConcurrency int) *SearchUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if enrichConcurrency <= 0 {
		enrichConcurrency = defaultEnrichConcurrency
	}
	return &SearchUseCase{
		repo:              repo,
		metrics:           metrics,
		tracer:            otel.Tracer("ventanilla/customer"),
		enrichConcurrency: enrichConcurrency,
	}
}

// Search ejecuta la búsqueda. Cualquier fallo del registro aborta la búsqueda completa con
// domain.ErrQueryFailed; nunca se devuelven resultados parciales.
func (uc *SearchUseCase) Search(ctx context.Context, filters entity.CustomerSearchFilters) (*dto.CustomerSearchResponse, error) {
	start := time.Now()
	ctx, span := uc.tracer.Start(ctx, "customer.search")
	defer span.End()

	f := customersearch.Normalize(filters)
	results, err := uc.search(ctx, f)
	uc.metrics.ObservePhase(ports.PhaseTotal, time.Since(start))
	if err != nil {
		uc.metrics.IncSearch(OutcomeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "búsqueda fallida")
		return nil, err
	}

	if len(results) == 0 {
		uc.metrics.IncSearch(OutcomeEmpty)
	} else {
		uc.metrics.IncSearch(OutcomeFound)
	}
	span.SetAttributes(attribute.Int("customer.search.results", len(results)))
	return &dto.CustomerSearchResponse{Data: results, TotalCount: len(results)}, nil
}

func (uc *SearchUseCase) search(ctx context.Context, f entity.CustomerSearchFilters) ([]dto.CustomerSearchResult, error) {
	var (
		base                        []*entity.Customer
		byPhone, byGovID, byAddress repository.IDSet
	)

	// El paso base y los de acotamiento son lecturas independientes.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.phase(gctx, ports.PhaseBase, func(ctx context.Context) (err error) {
			base, err = uc.repo.SearchByName(ctx, entity.NameFilter{
				FirstName:      f.FirstName,
				LastName:       f.LastName,
				SecondLastName: f.SecondLastName,
			})
			return err
		})
	})
	if f.HasPhone() {
		g.Go(func() error {
			return uc.phase(gctx, ports.PhasePhone, func(ctx context.Context) (err error) {
				byPhone, err = uc.repo.CustomerIDsByPhone(ctx, phoneNumbers(f))
				byPhone = requested(byPhone)
				return err
			})
		})
	}
	if f.HasGovernmentID() {
		g.Go(func() error {
			return uc.phase(gctx, ports.PhaseGovernmentID, func(ctx context.Context) (err error) {
				byGovID, err = uc.repo.CustomerIDsByGovernmentID(ctx, governmentIDPredicates(f))
				byGovID = requested(byGovID)
				return err
			})
		})
	}
	if f.HasAddress() {
		g.Go(func() error {
			return uc.phase(gctx, ports.PhaseAddress, func(ctx context.Context) (err error) {
				byAddress, err = uc.repo.CustomerIDsByAddress(ctx, entity.AddressPredicate{
					StateID:        f.StateID,
					MunicipalityID: f.MunicipalityID,
					NeighborhoodID: f.NeighborhoodID,
					PostalCode:     f.PostalCode,
				})
				byAddress = requested(byAddress)
				return err
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := narrow(base, byPhone, byGovID, byAddress)

	var results []dto.CustomerSearchResult
	err := uc.phase(ctx, ports.PhaseEnrichment, func(ctx context.Context) (err error) {
		results, err = uc.enrich(ctx, candidates)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// phase mide, traza y traduce a ErrQueryFailed el error de un paso.
func (uc *SearchUseCase) phase(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := uc.tracer.Start(ctx, "customer.search."+name)
	defer span.End()
	start := time.Now()
	err := fn(ctx)
	uc.metrics.ObservePhase(name, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name)
		return fmt.Errorf("%w: paso %s: %w", domain.ErrQueryFailed, name, err)
	}
	return nil
}

// requested marca un paso ejecutado: un conjunto nil del adaptador equivale a cero coincidencias.
func requested(s repository.IDSet) repository.IDSet {
	if s == nil {
		return repository.IDSet{}
	}
	return s
}

// narrow conserva el orden del paso base e interseca con cada conjunto solicitado (nil = paso no pedido).
func narrow(base []*entity.Customer, sets ...repository.IDSet) []*entity.Customer {
	out := make([]*entity.Customer, 0, len(base))
next:
	for _, c := range base {
		for _, s := range sets {
			if s != nil && !s.Has(c.ID) {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}

// enrich obtiene para cada candidato un teléfono, el RFC y el domicilio principal formateado.
func (uc *SearchUseCase) enrich(ctx context.Context, candidates []*entity.Customer) ([]dto.CustomerSearchResult, error) {
	results := make([]dto.CustomerSearchResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.enrichConcurrency)
	for i, c := range candidates {
		g.Go(func() error {
			phones, err := uc.repo.ListPhones(gctx, c.ID)
			if err != nil {
				return err
			}
			ids, err := uc.repo.ListGovernmentIDs(gctx, c.ID)
			if err != nil {
				return err
			}
			addresses, err := uc.repo.ListAddresses(gctx, c.ID)
			if err != nil {
				return err
			}
			results[i] = dto.CustomerSearchResult{
				ID:               c.ID,
				FirstName:        c.FirstName,
				LastName:         c.LastName,
				SecondLastName:   c.SecondLastName,
				Status:           c.Status,
				RegistrationDate: c.RegistrationDate,
				PrimaryPhone:     firstPhone(phones),
				RFC:              rfcNumber(ids),
				PrimaryAddress:   FormatAddress(primaryAddress(addresses)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func phoneNumbers(f entity.CustomerSearchFilters) []string {
	var out []string
	if f.PrimaryPhone != "" {
		out = append(out, f.PrimaryPhone)
	}
	if f.SecondaryPhone != "" {
		out = append(out, f.SecondaryPhone)
	}
	return out
}

func governmentIDPredicates(f entity.CustomerSearchFilters) []entity.GovernmentIDPredicate {
	var out []entity.GovernmentIDPredicate
	if f.RFC != "" {
		out = append(out, entity.GovernmentIDPredicate{Type: entity.GovernmentIDTypeRFC, Number: f.RFC})
	}
	if f.IFE != "" {
		out = append(out, entity.GovernmentIDPredicate{Type: entity.GovernmentIDTypeIFE, Number: f.IFE})
	}
	if f.Passport != "" {
		out = append(out, entity.GovernmentIDPredicate{Type: entity.GovernmentIDTypePassport, Number: f.Passport})
	}
	return out
}
