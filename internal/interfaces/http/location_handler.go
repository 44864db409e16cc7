package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/usecase"
)

// LocationHandler catálogo de estados, municipios y colonias.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// ListStates godoc
// @Summary      Estados
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/locations/states [get]
func (h *LocationHandler) ListStates(c *fiber.Ctx) error {
	list, err := h.uc.ListStates(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListMunicipalities GET /api/locations/states/:id/municipalities
func (h *LocationHandler) ListMunicipalities(c *fiber.Ctx) error {
	list, err := h.uc.ListMunicipalities(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListNeighborhoods GET /api/locations/municipalities/:id/neighborhoods
func (h *LocationHandler) ListNeighborhoods(c *fiber.Ctx) error {
	list, err := h.uc.ListNeighborhoods(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
