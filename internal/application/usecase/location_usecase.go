package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

// LocationUseCase catálogo de ubicaciones para los filtros de domicilio.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// ListStates lista los estados.
func (uc *LocationUseCase) ListStates(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.repo.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: estados: %w", domain.ErrQueryFailed, err)
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.LocationResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// ListMunicipalities lista los municipios de un estado.
func (uc *LocationUseCase) ListMunicipalities(ctx context.Context, stateID string) ([]dto.LocationResponse, error) {
	if stateID == "" {
		return nil, fmt.Errorf("%w: stateId requerido", domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListMunicipalities(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("%w: municipios: %w", domain.ErrQueryFailed, err)
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.LocationResponse{ID: m.ID, Name: m.Name, ParentID: m.StateID})
	}
	return out, nil
}

// ListNeighborhoods lista las colonias de un municipio.
func (uc *LocationUseCase) ListNeighborhoods(ctx context.Context, municipalityID string) ([]dto.LocationResponse, error) {
	if municipalityID == "" {
		return nil, fmt.Errorf("%w: municipalityId requerido", domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListNeighborhoods(ctx, municipalityID)
	if err != nil {
		return nil, fmt.Errorf("%w: colonias: %w", domain.ErrQueryFailed, err)
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.LocationResponse{ID: n.ID, Name: n.Name, ParentID: n.MunicipalityID})
	}
	return out, nil
}
