package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrQueryFailed es la única condición con la que se reporta cualquier fallo
	// de acceso al registro de clientes; una búsqueda nunca devuelve resultados parciales.
	ErrQueryFailed = errors.New("consulta al registro de clientes fallida")
	// ErrCardFetchFailed distingue el fallo al consultar tarjetas de "cliente sin tarjetas".
	ErrCardFetchFailed = errors.New("no se pudieron obtener las tarjetas")

	ErrOffline           = errors.New("el sistema no está en modo en línea")
	ErrCustomerInactive  = errors.New("el cliente no está activo")
	ErrCardNotSelectable = errors.New("la tarjeta no puede seleccionarse para pago")
)
