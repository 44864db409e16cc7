package card

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/pkg/cardsecurity"
)

// Estados de tarjeta tal como se muestran en ventanilla.
const (
	DisplayStatusActive   = "active"
	DisplayStatusBlocked  = "blocked"
	DisplayStatusInactive = "inactive"
)

var embossLocale = language.MustParse("es-MX")

// DisplayStatus traduce el estado del registro: expired se muestra como blocked.
func DisplayStatus(registryStatus string) string {
	switch registryStatus {
	case entity.CardStatusExpired:
		return DisplayStatusBlocked
	case entity.CardStatusActive:
		return DisplayStatusActive
	default:
		return DisplayStatusInactive
	}
}

// CardholderName "{nombre} {segundo apellido} {apellido}" sin espacios sobrantes.
func CardholderName(c *entity.Customer) string {
	if c == nil {
		return ""
	}
	return strings.Join(strings.Fields(c.FirstName+" "+c.SecondLastName+" "+c.LastName), " ")
}

// Record arma la entrada de cardsecurity a partir de la tarjeta del registro.
// Sin fecha de vencimiento la tarjeta se evalúa como vencida.
func Record(c *entity.Card) cardsecurity.CardRecord {
	exp := ""
	if c.ExpirationDate != nil {
		exp = cardsecurity.FormatExpiration(*c.ExpirationDate)
	}
	return cardsecurity.CardRecord{Number: c.Number, ExpirationDate: exp, Status: c.Status}
}

// BuildView construye la vista segura de la tarjeta. El PAN solo se usa aquí para derivar
// los campos enmascarados y la compuerta de transacción; no se copia a la vista.
func BuildView(c *entity.Card, holder *entity.Customer, now time.Time) dto.CardView {
	rec := Record(c)
	gate := cardsecurity.ValidateForTransactionAt(rec, now)
	name := CardholderName(holder)

	v := dto.CardView{
		ID:             c.ID,
		CustomerID:     c.CustomerID,
		MaskedNumber:   cardsecurity.Mask(c.Number),
		LastFourDigits: cardsecurity.LastFour(c.Number),
		Brand:          cardsecurity.DetectBrand(c.Number),
		CardType:       c.Type,
		CardholderName: name,
		EmbossedName:   cases.Upper(embossLocale).String(name),
		Status:         DisplayStatus(c.Status),
		ExpirationDate: rec.ExpirationDate,
		Selectable:     gate.IsValid,
		RejectReason:   gate.Error,
	}
	v.CardholderName = displaySafe(v.CardholderName)
	v.EmbossedName = displaySafe(v.EmbossedName)
	v.MaskedNumber = displaySafe(v.MaskedNumber)
	v.LastFourDigits = displaySafe(v.LastFourDigits)
	return v
}

// displaySafe reemplaza por el centinela cualquier texto con una secuencia tipo PAN.
func displaySafe(s string) string {
	if cardsecurity.IsPCICompliantDisplay(s) {
		return s
	}
	return cardsecurity.MaskSentinel
}
