package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// onlineChecker contrato mínimo del middleware; lo implementa *onlinemode.Service.
type onlineChecker interface {
	Check(ctx context.Context) entity.OnlineStatus
}

// RequireOnlineMode rechaza la petición antes de tocar el registro si alguna dependencia no responde.
//   - 503 OFFLINE → el mensaje nombra cada dependencia caída.
func RequireOnlineMode(checker onlineChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := checker.Check(c.UserContext())
		if !st.Online() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "OFFLINE",
				Message: st.Reason(),
			})
		}
		return c.Next()
	}
}
