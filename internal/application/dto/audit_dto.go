package dto

import "time"

// RecordAuditRequest body para POST /api/audit. El cajero sale del token, no del body.
type RecordAuditRequest struct {
	SearchCriteria     map[string]any `json:"searchCriteria"`
	ResultsCount       int            `json:"resultsCount" validate:"min=0"`
	SelectedCustomerID *string        `json:"selectedCustomerId,omitempty"`
	ActionType         string         `json:"actionType" validate:"required,oneof=search select view_cards"`
}

// AuditEntryResponse entrada almacenada.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
