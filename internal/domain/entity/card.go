package entity

import "time"

// Estados de tarjeta en el registro.
const (
	CardStatusActive   = "active"
	CardStatusInactive = "inactive"
	CardStatusExpired  = "expired"
)

// Tipos de tarjeta.
const (
	CardTypeDebit   = "debit"
	CardTypeCredit  = "credit"
	CardTypePrepaid = "prepaid"
)

// Card tarjeta de pago tal como la guarda el registro.
// Number es el PAN completo: no debe salir de la capa de tarjetas sin enmascarar.
type Card struct {
	ID             string
	CustomerID     string
	Number         string
	Type           string // debit | credit | prepaid
	Status         string // active | inactive | expired
	IssuanceDate   time.Time
	ExpirationDate *time.Time
}
