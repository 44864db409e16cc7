package entity

import "time"

// Estados de cliente en el registro central.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Customer representa un cliente del registro central (solo lectura).
// Solo los clientes activos pueden avanzar al flujo de pago; los inactivos se pueden consultar.
type Customer struct {
	ID               string
	FirstName        string
	LastName         string
	SecondLastName   string // opcional
	Status           string // active | inactive
	RegistrationDate time.Time
}

// IsActive informa si el cliente puede avanzar al flujo de pago.
func (c *Customer) IsActive() bool {
	return c != nil && c.Status == CustomerStatusActive
}
