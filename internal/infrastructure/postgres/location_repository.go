package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo catálogo de estados, municipios y colonias.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// ListStates lista los estados por nombre.
func (r *LocationRepo) ListStates(ctx context.Context) ([]*entity.State, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM states ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.State, 0)
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListMunicipalities municipios de un estado.
func (r *LocationRepo) ListMunicipalities(ctx context.Context, stateID string) ([]*entity.Municipality, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, state_id FROM municipalities WHERE state_id = $1 ORDER BY name`, stateID)
	if err != nil {
		return nil, fmt.Errorf("list municipalities: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Municipality, 0)
	for rows.Next() {
		var m entity.Municipality
		if err := rows.Scan(&m.ID, &m.Name, &m.StateID); err != nil {
			return nil, fmt.Errorf("scan municipality: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListNeighborhoods colonias de un municipio.
func (r *LocationRepo) ListNeighborhoods(ctx context.Context, municipalityID string) ([]*entity.Neighborhood, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, municipality_id FROM neighborhoods WHERE municipality_id = $1 ORDER BY name`, municipalityID)
	if err != nil {
		return nil, fmt.Errorf("list neighborhoods: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Neighborhood, 0)
	for rows.Next() {
		var n entity.Neighborhood
		if err := rows.Scan(&n.ID, &n.Name, &n.MunicipalityID); err != nil {
			return nil, fmt.Errorf("scan neighborhood: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
