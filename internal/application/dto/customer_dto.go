package dto

import "time"

// CustomerSearchRequest body para POST /api/customers/search. Los 14 filtros son opcionales.
type CustomerSearchRequest struct {
	PrimaryPhone   string `json:"primaryPhone"`
	SecondaryPhone string `json:"secondaryPhone"`
	ClientNumber   string `json:"clientNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	SecondLastName string `json:"secondLastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	RFC            string `json:"rfc"`
	IFE            string `json:"ife"`
	Passport       string `json:"passport"`
	StateID        string `json:"stateId"`
	MunicipalityID string `json:"municipalityId"`
	NeighborhoodID string `json:"neighborhoodId"`
	PostalCode     string `json:"postalCode"`
}

// CustomerSearchResult cliente encontrado con los campos derivados para la lista de resultados.
type CustomerSearchResult struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	SecondLastName   string    `json:"secondLastName,omitempty"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registrationDate"`
	PrimaryPhone     string    `json:"primaryPhone"`
	RFC              *string   `json:"rfc"`
	PrimaryAddress   string    `json:"primaryAddress"`
}

// CustomerSearchResponse respuesta de búsqueda. TotalCount siempre es len(Data).
type CustomerSearchResponse struct {
	Data       []CustomerSearchResult `json:"data"`
	TotalCount int                    `json:"totalCount"`
}

// AddressResponse domicilio con nombres de ubicación y línea formateada.
type AddressResponse struct {
	ID               string `json:"id"`
	Street           string `json:"street"`
	PostalCode       string `json:"postalCode,omitempty"`
	StateID          string `json:"stateId"`
	StateName        string `json:"stateName"`
	MunicipalityID   string `json:"municipalityId"`
	MunicipalityName string `json:"municipalityName"`
	NeighborhoodID   string `json:"neighborhoodId,omitempty"`
	NeighborhoodName string `json:"neighborhoodName,omitempty"`
	IsPrimary        bool   `json:"isPrimary"`
	Formatted        string `json:"formatted"`
}

// PhoneResponse teléfono del cliente.
type PhoneResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// GovernmentIDResponse identificación oficial.
type GovernmentIDResponse struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Number string `json:"number"`
}

// CustomerDetailResponse perfil completo del cliente para GET /api/customers/:id.
// EligibleForPayment es false para clientes inactivos: se muestran pero no avanzan al pago.
type CustomerDetailResponse struct {
	ID                 string                 `json:"id"`
	FirstName          string                 `json:"firstName"`
	LastName           string                 `json:"lastName"`
	SecondLastName     string                 `json:"secondLastName,omitempty"`
	FullName           string                 `json:"fullName"`
	Status             string                 `json:"status"`
	RegistrationDate   time.Time              `json:"registrationDate"`
	EligibleForPayment bool                   `json:"eligibleForPayment"`
	Addresses          []AddressResponse      `json:"addresses"`
	Phones             []PhoneResponse        `json:"phones"`
	GovernmentIDs      []GovernmentIDResponse `json:"governmentIds"`
}
