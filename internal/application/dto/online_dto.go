package dto

import "time"

// OnlineModeResponse respuesta de GET /api/online-mode.
type OnlineModeResponse struct {
	Status    string    `json:"status"` // online | offline
	Database  bool      `json:"database"`
	Broker    bool      `json:"broker"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
