package repository

import (
	"context"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// CashierRepository puerto de lectura de cuentas de cajero. (nil, nil) si no existe.
type CashierRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.Cashier, error)
}
