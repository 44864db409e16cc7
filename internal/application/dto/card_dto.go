package dto

// CardView tarjeta segura para mostrar: nunca incluye el PAN completo.
type CardView struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	MaskedNumber   string `json:"maskedNumber"`
	LastFourDigits string `json:"lastFourDigits"`
	Brand          string `json:"brand"`
	CardType       string `json:"cardType"`
	CardholderName string `json:"cardholderName"`
	EmbossedName   string `json:"embossedName"`
	Status         string `json:"status"` // active | blocked | inactive
	ExpirationDate string `json:"expirationDate"`
	Selectable     bool   `json:"selectable"`
	RejectReason   string `json:"rejectReason,omitempty"`
}

// CardSelectionResponse tarjeta aprobada para continuar al paso de pago.
type CardSelectionResponse struct {
	CustomerID string   `json:"customerId"`
	Card       CardView `json:"card"`
}
