package entity

// Tipos de teléfono.
const (
	PhoneTypeMobile = "mobile"
	PhoneTypeHome   = "home"
	PhoneTypeWork   = "work"
)

// Phone teléfono de 10 dígitos asociado a un cliente.
type Phone struct {
	ID         string
	CustomerID string
	Number     string
	Type       string // mobile | home | work
}
