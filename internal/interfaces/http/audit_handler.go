package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/audit"
	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
)

// AuditHandler registro explícito en la bitácora de búsqueda.
type AuditHandler struct {
	uc *audit.RecordUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.RecordUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar acción en la bitácora
// @Tags         audit
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecordAuditRequest  true  "actionType: search | select | view_cards"
// @Success      201   {object}  dto.AuditEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/audit [post]
func (h *AuditHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordAuditRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Record(c.UserContext(), audit.RecordInput{
		CashierID:          GetCashierID(c),
		SearchCriteria:     in.SearchCriteria,
		ResultsCount:       in.ResultsCount,
		SelectedCustomerID: in.SelectedCustomerID,
		ActionType:         in.ActionType,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
