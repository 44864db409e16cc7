package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
)

var _ ports.DependencyChecker = (*RegistryChecker)(nil)

// RegistryChecker verifica que el registro de clientes responda (mitad "base de datos" del modo en línea).
type RegistryChecker struct {
	pool *pgxpool.Pool
}

// NewRegistryChecker construye el verificador sobre el pool.
func NewRegistryChecker(pool *pgxpool.Pool) *RegistryChecker {
	return &RegistryChecker{pool: pool}
}

// Ping ejecuta una consulta trivial; el contexto debe traer el timeout del chequeo.
func (c *RegistryChecker) Ping(ctx context.Context) error {
	var one int
	if err := c.pool.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("ping registro: %w", err)
	}
	return nil
}
