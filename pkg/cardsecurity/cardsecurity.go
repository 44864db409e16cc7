// Package cardsecurity contiene las utilidades PCI para tarjetas de pago: enmascarado,
// detección de marca por IIN, vigencia, estado y la validación previa a una transacción.
// Todas las funciones son puras y nunca entran en pánico.
package cardsecurity

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MaskSentinel se devuelve cuando el número es demasiado corto para enmascararlo sin filtrar dígitos.
const MaskSentinel = "****"

// Marcas reconocidas por DetectBrand.
const (
	BrandVisa            = "Visa"
	BrandMasterCard      = "MasterCard"
	BrandAmericanExpress = "American Express"
	BrandDiscover        = "Discover"
	BrandDinersClub      = "Diners Club"
	BrandUnknown         = "Unknown"
)

// Mensajes de rechazo de ValidateForTransaction, en el orden en que se evalúan.
const (
	ErrMsgInvalidLength = "El número de tarjeta tiene una longitud inválida"
	ErrMsgExpired       = "La tarjeta está vencida"
	ErrMsgNotActive     = "La tarjeta no está activa"
)

// validLengths unión de longitudes válidas de las redes principales.
var validLengths = map[int]bool{13: true, 14: true, 15: true, 16: true, 19: true}

var (
	expirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	panRunPattern     = regexp.MustCompile(`\d{13,19}`)
)

// CardRecord lo mínimo que necesita la validación de una tarjeta.
// ExpirationDate va en formato MM/YY.
type CardRecord struct {
	Number         string
	ExpirationDate string
	Status         string
}

// ValidationResult resultado de ValidateForTransaction. Error vacío cuando IsValid.
type ValidationResult struct {
	IsValid bool
	Error   string
}

// Mask devuelve "**** **** **** 1234" con los últimos 4 caracteres del número.
func Mask(number string) string {
	last := LastFour(number)
	if last == "" {
		return MaskSentinel
	}
	return "**** **** **** " + last
}

// LastFour devuelve los últimos 4 caracteres, o "" si el número tiene menos de 4.
func LastFour(number string) string {
	r := []rune(number)
	if len(r) < 4 {
		return ""
	}
	return string(r[len(r)-4:])
}

// IsValidLength verifica solo la estructura: sin espacios, todo dígitos y longitud 13, 14, 15, 16 o 19.
// No aplica Luhn.
func IsValidLength(number string) bool {
	digits := stripSpaces(number)
	if !allDigits(digits) {
		return false
	}
	return validLengths[len(digits)]
}

// DetectBrand identifica la marca por rangos IIN. Solo se usa para mostrar; nunca bloquea una transacción.
func DetectBrand(number string) string {
	n := stripSpaces(number)
	if n == "" || !allDigits(n) {
		return BrandUnknown
	}
	switch {
	case strings.HasPrefix(n, "4"):
		return BrandVisa
	case prefixInRange(n, 2, 51, 55), prefixInRange(n, 4, 2221, 2720):
		return BrandMasterCard
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return BrandAmericanExpress
	case strings.HasPrefix(n, "6011"), prefixInRange(n, 3, 644, 649), strings.HasPrefix(n, "65"),
		prefixInRange(n, 6, 622126, 622925):
		return BrandDiscover
	case prefixInRange(n, 3, 300, 305), strings.HasPrefix(n, "36"), strings.HasPrefix(n, "38"):
		return BrandDinersClub
	}
	return BrandUnknown
}

// IsExpired evalúa una fecha MM/YY contra el mes actual.
// Una entrada vacía o malformada se considera vencida.
func IsExpired(expMonthYear string) bool {
	return IsExpiredAt(expMonthYear, time.Now())
}

// IsExpiredAt igual que IsExpired pero con la fecha de referencia explícita.
// La tarjeta sigue vigente durante todo su mes de vencimiento.
func IsExpiredAt(expMonthYear string, now time.Time) bool {
	m := expirationPattern.FindStringSubmatch(strings.TrimSpace(expMonthYear))
	if m == nil {
		return true
	}
	month, _ := strconv.Atoi(m[1])
	yy, _ := strconv.Atoi(m[2])
	year := 2000 + yy

	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}

// IsUsable informa si el estado equivale a "active" sin importar mayúsculas.
func IsUsable(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "active")
}

// ValidateForTransaction es la única compuerta antes de ofrecer una tarjeta para pago.
// Evalúa en orden longitud, vigencia y estado, y devuelve el primer motivo que falle.
func ValidateForTransaction(card CardRecord) ValidationResult {
	return ValidateForTransactionAt(card, time.Now())
}

// ValidateForTransactionAt igual que ValidateForTransaction con la fecha de referencia explícita.
func ValidateForTransactionAt(card CardRecord, now time.Time) ValidationResult {
	if !IsValidLength(card.Number) {
		return ValidationResult{Error: ErrMsgInvalidLength}
	}
	if IsExpiredAt(card.ExpirationDate, now) {
		return ValidationResult{Error: ErrMsgExpired}
	}
	if !IsUsable(card.Status) {
		return ValidationResult{Error: ErrMsgNotActive}
	}
	return ValidationResult{IsValid: true}
}

// IsPCICompliantDisplay es true si el texto no contiene ninguna secuencia de 13 a 19 dígitos.
func IsPCICompliantDisplay(text string) bool {
	return !panRunPattern.MatchString(text)
}

// SanitizeForLogging devuelve una copia del registro con cardNumber enmascarado y sin cvv.
// Es obligatoria antes de enviar cualquier estructura con datos de tarjeta a un log.
func SanitizeForLogging(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		switch k {
		case "cvv":
			continue
		case "cardNumber":
			if s, ok := v.(string); ok {
				out[k] = Mask(s)
				continue
			}
			out[k] = MaskSentinel
			continue
		}
		out[k] = v
	}
	return out
}

// FormatExpiration devuelve la fecha en formato MM/YY. El vencimiento es una fecha de
// calendario guardada como medianoche UTC; se formatea en UTC sin importar la zona del proceso.
func FormatExpiration(t time.Time) string {
	return t.UTC().Format("01/06")
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// prefixInRange compara los primeros n dígitos como número contra [lo, hi].
func prefixInRange(s string, n, lo, hi int) bool {
	if len(s) < n {
		return false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return false
	}
	return v >= lo && v <= hi
}
