package entity

// Address domicilio de un cliente con la jerarquía estado → municipio → colonia.
// Los nombres de ubicación vienen del LEFT JOIN con el catálogo y pueden estar vacíos.
type Address struct {
	ID               string
	CustomerID       string
	Street           string
	PostalCode       string // 5 dígitos cuando existe
	StateID          string
	MunicipalityID   string
	NeighborhoodID   string // opcional
	IsPrimary        bool
	StateName        string
	MunicipalityName string
	NeighborhoodName string
}

// State catálogo de estados.
type State struct {
	ID   string
	Name string
}

// Municipality catálogo de municipios (pertenece a un estado).
type Municipality struct {
	ID      string
	Name    string
	StateID string
}

// Neighborhood catálogo de colonias (pertenece a un municipio).
type Neighborhood struct {
	ID             string
	Name           string
	MunicipalityID string
}
