package entity

// CustomerSearchFilters los 14 filtros opcionales de búsqueda de clientes.
// Un campo vacío significa "sin restricción".
type CustomerSearchFilters struct {
	PrimaryPhone   string
	SecondaryPhone string
	ClientNumber   string
	FirstName      string
	LastName       string
	SecondLastName string
	DateOfBirth    string
	RFC            string
	IFE            string
	Passport       string
	StateID        string
	MunicipalityID string
	NeighborhoodID string
	PostalCode     string
}

// HasPhone informa si se pidió el paso de teléfonos.
func (f CustomerSearchFilters) HasPhone() bool {
	return f.PrimaryPhone != "" || f.SecondaryPhone != ""
}

// HasGovernmentID informa si se pidió el paso de identificaciones.
func (f CustomerSearchFilters) HasGovernmentID() bool {
	return f.RFC != "" || f.IFE != "" || f.Passport != ""
}

// HasAddress informa si se pidió el paso de domicilio.
func (f CustomerSearchFilters) HasAddress() bool {
	return f.StateID != "" || f.MunicipalityID != "" || f.NeighborhoodID != "" || f.PostalCode != ""
}

// NameFilter filtros del paso base (subcadena sensible a mayúsculas).
type NameFilter struct {
	FirstName      string
	LastName       string
	SecondLastName string
}

// GovernmentIDPredicate exige una identificación de un tipo con número exacto.
type GovernmentIDPredicate struct {
	Type   string
	Number string
}

// AddressPredicate predicados de domicilio; los no vacíos deben cumplirse sobre el mismo registro.
type AddressPredicate struct {
	StateID        string
	MunicipalityID string
	NeighborhoodID string
	PostalCode     string
}
