package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
)

// respondError traduce los errores de dominio a ErrorResponse. Los fallos del registro
// se reportan con un mensaje fijo, sin detalle del driver.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o suspendida"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrOffline):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "OFFLINE", Message: err.Error()})
	case errors.Is(err, domain.ErrCustomerInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CUSTOMER_INACTIVE", Message: domain.ErrCustomerInactive.Error()})
	case errors.Is(err, domain.ErrCardNotSelectable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CARD_NOT_SELECTABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrQueryFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "QUERY_FAILED", Message: domain.ErrQueryFailed.Error()})
	case errors.Is(err, domain.ErrCardFetchFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CARD_FETCH_FAILED", Message: domain.ErrCardFetchFailed.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}
