// Package customersearch contiene las reglas de validación de los filtros de búsqueda de clientes:
// política de mínimo de filtros y formato de teléfono, RFC y código postal.
package customersearch

import (
	"regexp"
	"strings"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// MinFilledFilters mínimo de grupos de filtro llenos para permitir una búsqueda.
const MinFilledFilters = 2

// Nombres de campo usados en los errores (coinciden con las llaves JSON de la petición).
const (
	FieldPrimaryPhone   = "primaryPhone"
	FieldSecondaryPhone = "secondaryPhone"
	FieldRFC            = "rfc"
	FieldPostalCode     = "postalCode"
)

// Mensajes de validación.
const (
	MsgMinFilters = "Debe proporcionar al menos 2 filtros de búsqueda"
	MsgPhone      = "El teléfono debe tener exactamente 10 dígitos"
	MsgRFC        = "El RFC debe tener exactamente 13 caracteres alfanuméricos"
	MsgPostalCode = "El código postal debe tener exactamente 5 dígitos"
)

var (
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
	rfcPattern        = regexp.MustCompile(`^[A-Za-z0-9]{13}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
)

// FieldError error asociado a un campo concreto.
type FieldError struct {
	Field   string
	Message string
}

// ValidationResult resultado de Validate. En un fallo se llena GeneralError (mínimo de filtros)
// o Errors (formato), nunca ambos.
type ValidationResult struct {
	IsValid      bool
	Errors       []FieldError
	GeneralError string
}

// CountFilled cuenta los grupos de filtro llenos. Los cuatro campos de domicilio cuentan como uno solo.
func CountFilled(f entity.CustomerSearchFilters) int {
	n := 0
	for _, v := range []string{
		f.PrimaryPhone, f.SecondaryPhone, f.ClientNumber,
		f.FirstName, f.LastName, f.SecondLastName,
		f.DateOfBirth, f.RFC, f.IFE, f.Passport,
	} {
		if filled(v) {
			n++
		}
	}
	if filled(f.StateID) || filled(f.MunicipalityID) || filled(f.NeighborhoodID) || filled(f.PostalCode) {
		n++
	}
	return n
}

// Validate aplica la política de mínimo de filtros y, solo si se cumple, las reglas de formato.
// Los errores de formato se acumulan.
func Validate(f entity.CustomerSearchFilters) ValidationResult {
	if CountFilled(f) < MinFilledFilters {
		return ValidationResult{GeneralError: MsgMinFilters}
	}

	var errs []FieldError
	if v := strings.TrimSpace(f.PrimaryPhone); v != "" && !phonePattern.MatchString(v) {
		errs = append(errs, FieldError{Field: FieldPrimaryPhone, Message: MsgPhone})
	}
	if v := strings.TrimSpace(f.SecondaryPhone); v != "" && !phonePattern.MatchString(v) {
		errs = append(errs, FieldError{Field: FieldSecondaryPhone, Message: MsgPhone})
	}
	if v := strings.TrimSpace(f.RFC); v != "" && !rfcPattern.MatchString(v) {
		errs = append(errs, FieldError{Field: FieldRFC, Message: MsgRFC})
	}
	if v := strings.TrimSpace(f.PostalCode); v != "" && !postalCodePattern.MatchString(v) {
		errs = append(errs, FieldError{Field: FieldPostalCode, Message: MsgPostalCode})
	}

	if len(errs) > 0 {
		return ValidationResult{Errors: errs}
	}
	return ValidationResult{IsValid: true}
}

// Normalize recorta espacios de todos los campos; el orquestador trabaja siempre con filtros normalizados.
func Normalize(f entity.CustomerSearchFilters) entity.CustomerSearchFilters {
	return entity.CustomerSearchFilters{
		PrimaryPhone:   strings.TrimSpace(f.PrimaryPhone),
		SecondaryPhone: strings.TrimSpace(f.SecondaryPhone),
		ClientNumber:   strings.TrimSpace(f.ClientNumber),
		FirstName:      strings.TrimSpace(f.FirstName),
		LastName:       strings.TrimSpace(f.LastName),
		SecondLastName: strings.TrimSpace(f.SecondLastName),
		DateOfBirth:    strings.TrimSpace(f.DateOfBirth),
		RFC:            strings.TrimSpace(f.RFC),
		IFE:            strings.TrimSpace(f.IFE),
		Passport:       strings.TrimSpace(f.Passport),
		StateID:        strings.TrimSpace(f.StateID),
		MunicipalityID: strings.TrimSpace(f.MunicipalityID),
		NeighborhoodID: strings.TrimSpace(f.NeighborhoodID),
		PostalCode:     strings.TrimSpace(f.PostalCode),
	}
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
