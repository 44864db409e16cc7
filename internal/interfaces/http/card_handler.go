package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/card"
)

// CardHandler consulta y selección de tarjetas (protegido).
type CardHandler struct {
	uc *card.CardUseCase
}

// NewCardHandler construye el handler.
func NewCardHandler(uc *card.CardUseCase) *CardHandler {
	return &CardHandler{uc: uc}
}

// GetByID godoc
// @Summary      Tarjeta enmascarada por id
// @Tags         cards
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de la tarjeta"
// @Success      200  {object}  dto.CardView
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cards/{id} [get]
func (h *CardHandler) GetByID(c *fiber.Ctx) error {
	v, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if v == nil {
		return notFound(c, "tarjeta no encontrada")
	}
	return c.JSON(v)
}

// Select godoc
// @Summary      Seleccionar tarjeta para pago
// @Description  La tarjeta debe pasar la validación de longitud, vigencia y estado; el titular debe estar activo.
// @Tags         cards
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id de la tarjeta"
// @Success      200  {object}  dto.CardSelectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cards/{id}/select [post]
func (h *CardHandler) Select(c *fiber.Ctx) error {
	out, err := h.uc.SelectForPayment(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "tarjeta no encontrada")
	}
	return c.JSON(out)
}
