package customer

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// FormatAddress arma "{calle}, {colonia}, {municipio}, {estado} {CP}".
// Los componentes vacíos dejan la línea irregular, nunca fallan.
func FormatAddress(a *entity.Address) string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s, %s %s",
		a.Street, a.NeighborhoodName, a.MunicipalityName, a.StateName, a.PostalCode)
}

// FullName nombre, apellido paterno y materno sin espacios sobrantes.
func FullName(c *entity.Customer) string {
	return joinNonEmpty(c.FirstName, c.LastName, c.SecondLastName)
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func primaryAddress(list []*entity.Address) *entity.Address {
	for _, a := range list {
		if a.IsPrimary {
			return a
		}
	}
	return nil
}

func firstPhone(list []*entity.Phone) string {
	if len(list) == 0 {
		return ""
	}
	return list[0].Number
}

func rfcNumber(list []*entity.GovernmentID) *string {
	for _, g := range list {
		if g.Type == entity.GovernmentIDTypeRFC {
			n := g.Number
			return &n
		}
	}
	return nil
}
