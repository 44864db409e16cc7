package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

var _ repository.CashierRepository = (*CashierRepo)(nil)

// CashierRepo implementación del puerto CashierRepository sobre PostgreSQL.
type CashierRepo struct {
	q Querier
}

// NewCashierRepository construye el adaptador de cuentas de cajero.
func NewCashierRepository(q Querier) *CashierRepo {
	return &CashierRepo{q: q}
}

// GetByUsername obtiene la cuenta por usuario (sensible a mayúsculas).
func (r *CashierRepo) GetByUsername(ctx context.Context, username string) (*entity.Cashier, error) {
	query := `
		SELECT id, branch_id, username, password_hash, name, role, status
		FROM cashiers WHERE username = $1`
	var c entity.Cashier
	err := r.q.QueryRow(ctx, query, username).Scan(
		&c.ID, &c.BranchID, &c.Username, &c.PasswordHash, &c.Name, &c.Role, &c.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cashier by username: %w", err)
	}
	return &c, nil
}
