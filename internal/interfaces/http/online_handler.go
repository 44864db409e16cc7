package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/onlinemode"
)

// OnlineHandler estado del modo en línea.
type OnlineHandler struct {
	svc *onlinemode.Service
}

// NewOnlineHandler construye el handler.
func NewOnlineHandler(svc *onlinemode.Service) *OnlineHandler {
	return &OnlineHandler{svc: svc}
}

// Get godoc
// @Summary      Estado del modo en línea
// @Tags         online-mode
// @Produce      json
// @Success      200  {object}  dto.OnlineModeResponse
// @Router       /api/online-mode [get]
func (h *OnlineHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.svc.Status(c.UserContext()))
}
