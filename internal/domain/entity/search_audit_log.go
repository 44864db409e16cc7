package entity

import "time"

// Acciones auditables del flujo de búsqueda y selección.
const (
	AuditActionSearch    = "search"
	AuditActionSelect    = "select"
	AuditActionViewCards = "view_cards"
)

// SearchAuditLogEntry registro inmutable de una acción del cajero.
type SearchAuditLogEntry struct {
	ID                 string
	CashierID          string
	Timestamp          time.Time
	SearchCriteria     map[string]any // snapshot opaco
	ResultsCount       int
	SelectedCustomerID *string
	ActionType         string
}

// IsValidAuditAction informa si la acción es una de las registrables.
func IsValidAuditAction(action string) bool {
	switch action {
	case AuditActionSearch, AuditActionSelect, AuditActionViewCards:
		return true
	}
	return false
}
