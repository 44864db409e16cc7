package repository

import (
	"context"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// CardRepository puerto de lectura de tarjetas. GetByID devuelve (nil, nil) si no existe.
type CardRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Card, error)
	GetByID(ctx context.Context, id string) (*entity.Card, error)
}
