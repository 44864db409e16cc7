package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo bitácora de búsquedas y selecciones. Solo INSERT.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append inserta la entrada; search_criteria se guarda como JSONB.
func (r *AuditLogRepo) Append(ctx context.Context, e *entity.SearchAuditLogEntry) error {
	query := `
		INSERT INTO search_audit_log (id, cashier_id, created_at, search_criteria, results_count, selected_customer_id, action_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	criteria := e.SearchCriteria
	if criteria == nil {
		criteria = map[string]any{}
	}
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CashierID, e.Timestamp, criteria, e.ResultsCount, e.SelectedCustomerID, e.ActionType,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
