package entity

// Estados de cuenta de cajero.
const (
	CashierStatusActive    = "active"
	CashierStatusSuspended = "suspended"
)

// Cashier usuario de ventanilla. PasswordHash es bcrypt; nunca sale de la capa de auth.
type Cashier struct {
	ID           string
	BranchID     string
	Username     string
	PasswordHash string
	Name         string
	Role         string // cajero | supervisor
	Status       string
}

// IsActive informa si la cuenta puede iniciar sesión.
func (c *Cashier) IsActive() bool {
	return c.Status == CashierStatusActive
}
