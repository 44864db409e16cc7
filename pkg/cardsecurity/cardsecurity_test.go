package cardsecurity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventanilla-api/pkg/cardsecurity"
)

// referencia fija: 15 de junio de 2025
var ref = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

// ── Enmascarado ───────────────────────────────────────────────────────────────

func TestMask_MuestraSoloUltimosCuatro(t *testing.T) {
	assert.Equal(t, "**** **** **** 9012", cardsecurity.Mask("4532123456789012"))
	assert.Equal(t, "**** **** **** 0005", cardsecurity.Mask("378282246310005"))
}

func TestMask_NumeroCortoDevuelveCentinela(t *testing.T) {
	for _, n := range []string{"", "1", "12", "123"} {
		assert.Equal(t, cardsecurity.MaskSentinel, cardsecurity.Mask(n), "entrada %q", n)
	}
}

// Para cualquier entrada el resultado es determinista y revela exactamente los últimos 4 caracteres.
func TestMask_DeterministaParaCualquierContenido(t *testing.T) {
	inputs := []string{"abcd", "1234", "4111 1111 1111 1111", "xx-99-zz", "0000000000000"}
	for _, in := range inputs {
		first := cardsecurity.Mask(in)
		second := cardsecurity.Mask(in)
		assert.Equal(t, first, second)
		assert.Equal(t, "**** **** **** "+in[len(in)-4:], first)
	}
}

func TestLastFour(t *testing.T) {
	assert.Equal(t, "9012", cardsecurity.LastFour("4532123456789012"))
	assert.Equal(t, "", cardsecurity.LastFour("123"))
}

// ── Longitud ──────────────────────────────────────────────────────────────────

func TestIsValidLength(t *testing.T) {
	cases := map[string]bool{
		"4222222222222":       true,  // 13
		"30569309025904":      true,  // 14
		"378282246310005":     true,  // 15
		"4532123456789012":    true,  // 16
		"4532 1234 5678 9012": true,  // espacios ignorados
		"6011000990139424123": true,  // 19
		"45321234567890123":   false, // 17
		"123":                 false,
		"4532-1234-5678-9012": false,
		"":                    false,
	}
	for in, want := range cases {
		assert.Equal(t, want, cardsecurity.IsValidLength(in), "entrada %q", in)
	}
}

// ── Marca ─────────────────────────────────────────────────────────────────────

func TestDetectBrand(t *testing.T) {
	cases := map[string]string{
		"4532123456789012": cardsecurity.BrandVisa,
		"5105105105105100": cardsecurity.BrandMasterCard,
		"2221000000000009": cardsecurity.BrandMasterCard,
		"2720990000000007": cardsecurity.BrandMasterCard,
		"378282246310005":  cardsecurity.BrandAmericanExpress,
		"341111111111111":  cardsecurity.BrandAmericanExpress,
		"6011111111111117": cardsecurity.BrandDiscover,
		"6445644564456445": cardsecurity.BrandDiscover,
		"6500000000000002": cardsecurity.BrandDiscover,
		"6221260000000000": cardsecurity.BrandDiscover,
		"6229250000000000": cardsecurity.BrandDiscover,
		"30569309025904":   cardsecurity.BrandDinersClub,
		"36000000000008":   cardsecurity.BrandDinersClub,
		"38520000023237":   cardsecurity.BrandDinersClub,
		"2220990000000000": cardsecurity.BrandUnknown,
		"6221250000000000": cardsecurity.BrandUnknown,
		"9999999999999999": cardsecurity.BrandUnknown,
		"":                 cardsecurity.BrandUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, cardsecurity.DetectBrand(in), "entrada %q", in)
	}
}

// ── Vigencia ──────────────────────────────────────────────────────────────────

func TestIsExpiredAt_FallaCerrado(t *testing.T) {
	for _, in := range []string{"", "13/25", "00/25", "1/25", "06-25", "06/2025", "aa/bb"} {
		assert.True(t, cardsecurity.IsExpiredAt(in, ref), "entrada malformada %q debe estar vencida", in)
	}
}

func TestIsExpiredAt_MesActualVigente(t *testing.T) {
	assert.False(t, cardsecurity.IsExpiredAt("06/25", ref), "el mes de vencimiento es inclusivo")
	assert.False(t, cardsecurity.IsExpiredAt("07/25", ref))
	assert.False(t, cardsecurity.IsExpiredAt("01/26", ref))
	assert.False(t, cardsecurity.IsExpiredAt("12/30", ref))
}

func TestIsExpiredAt_MesesAnteriores(t *testing.T) {
	assert.True(t, cardsecurity.IsExpiredAt("05/25", ref))
	assert.True(t, cardsecurity.IsExpiredAt("12/24", ref))
	assert.True(t, cardsecurity.IsExpiredAt("01/20", ref))
}

func TestIsUsable(t *testing.T) {
	assert.True(t, cardsecurity.IsUsable("active"))
	assert.True(t, cardsecurity.IsUsable("ACTIVE"))
	assert.False(t, cardsecurity.IsUsable("inactive"))
	assert.False(t, cardsecurity.IsUsable("expired"))
	assert.False(t, cardsecurity.IsUsable(""))
}

// ── Compuerta de transacción ─────────────────────────────────────────────────

func TestValidateForTransaction_TarjetaVigente(t *testing.T) {
	res := cardsecurity.ValidateForTransactionAt(cardsecurity.CardRecord{
		Number: "4532123456789012", ExpirationDate: "12/30", Status: "active",
	}, ref)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Error)
}

func TestValidateForTransaction_TarjetaVencida(t *testing.T) {
	res := cardsecurity.ValidateForTransactionAt(cardsecurity.CardRecord{
		Number: "4532123456789012", ExpirationDate: "01/20", Status: "active",
	}, ref)
	assert.False(t, res.IsValid)
	assert.Equal(t, cardsecurity.ErrMsgExpired, res.Error)
}

func TestValidateForTransaction_OrdenLongitudVigenciaEstado(t *testing.T) {
	res := cardsecurity.ValidateForTransactionAt(cardsecurity.CardRecord{
		Number: "123", ExpirationDate: "01/20", Status: "blocked",
	}, ref)
	require.False(t, res.IsValid)
	assert.Equal(t, cardsecurity.ErrMsgInvalidLength, res.Error, "la longitud se reporta primero")

	res = cardsecurity.ValidateForTransactionAt(cardsecurity.CardRecord{
		Number: "4532123456789012", ExpirationDate: "01/20", Status: "blocked",
	}, ref)
	assert.Equal(t, cardsecurity.ErrMsgExpired, res.Error, "la vigencia antes que el estado")

	res = cardsecurity.ValidateForTransactionAt(cardsecurity.CardRecord{
		Number: "4532123456789012", ExpirationDate: "12/30", Status: "inactive",
	}, ref)
	assert.Equal(t, cardsecurity.ErrMsgNotActive, res.Error)
}

// ── PCI ───────────────────────────────────────────────────────────────────────

func TestIsPCICompliantDisplay(t *testing.T) {
	assert.True(t, cardsecurity.IsPCICompliantDisplay("**** **** **** 9012"))
	assert.True(t, cardsecurity.IsPCICompliantDisplay("cliente 123456789012")) // 12 dígitos
	assert.False(t, cardsecurity.IsPCICompliantDisplay("pan=4532123456789012"))
	assert.False(t, cardsecurity.IsPCICompliantDisplay("4222222222222"))
}

func TestSanitizeForLogging(t *testing.T) {
	in := map[string]any{
		"cardNumber": "4532123456789012",
		"cvv":        "123",
		"customerId": "c-1",
		"amount":     100,
	}
	out := cardsecurity.SanitizeForLogging(in)

	assert.Equal(t, "**** **** **** 9012", out["cardNumber"])
	assert.NotContains(t, out, "cvv")
	assert.Equal(t, "c-1", out["customerId"])
	assert.Equal(t, 100, out["amount"])
	assert.Equal(t, "4532123456789012", in["cardNumber"], "el registro original no se modifica")
}

func TestSanitizeForLogging_SinDatosDeTarjeta(t *testing.T) {
	in := map[string]any{"customerId": "c-1"}
	assert.Equal(t, in, cardsecurity.SanitizeForLogging(in))
}

func TestFormatExpiration(t *testing.T) {
	assert.Equal(t, "03/27", cardsecurity.FormatExpiration(time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFormatExpiration_IgnoraZonaDelProceso(t *testing.T) {
	cdmx := time.FixedZone("CST", -6*60*60)
	exp := time.Date(2030, time.December, 1, 0, 0, 0, 0, time.UTC).In(cdmx)

	assert.Equal(t, "12/30", cardsecurity.FormatExpiration(exp))
}
