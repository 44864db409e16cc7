package entity

// Tipos de identificación oficial.
const (
	GovernmentIDTypeRFC      = "RFC"
	GovernmentIDTypeIFE      = "IFE"
	GovernmentIDTypePassport = "Passport"
)

// GovernmentID identificación oficial de un cliente (RFC = 13 alfanuméricos, IFE = 20 dígitos).
type GovernmentID struct {
	ID         string
	CustomerID string
	Type       string
	Number     string
}
