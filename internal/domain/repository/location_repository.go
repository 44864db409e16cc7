package repository

import (
	"context"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// LocationRepository catálogo estático estado → municipio → colonia.
type LocationRepository interface {
	ListStates(ctx context.Context) ([]*entity.State, error)
	ListMunicipalities(ctx context.Context, stateID string) ([]*entity.Municipality, error)
	ListNeighborhoods(ctx context.Context, municipalityID string) ([]*entity.Neighborhood, error)
}
