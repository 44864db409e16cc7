package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/Ventanilla-api/internal/application/audit"
	"github.com/jhoicas/Ventanilla-api/internal/application/card"
	"github.com/jhoicas/Ventanilla-api/internal/application/customer"
	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/customersearch"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// CustomerHandler búsqueda, detalle y selección de clientes en ventanilla (protegido).
type CustomerHandler struct {
	search *customer.SearchUseCase
	detail *customer.DetailUseCase
	cards  *card.CardUseCase
	audit  *audit.RecordUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(search *customer.SearchUseCase, detail *customer.DetailUseCase, cards *card.CardUseCase, audit *audit.RecordUseCase) *CustomerHandler {
	return &CustomerHandler{search: search, detail: detail, cards: cards, audit: audit}
}

// Search godoc
// @Summary      Buscar clientes
// @Description  Requiere al menos 2 filtros llenos (los campos de domicilio cuentan como uno).
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CustomerSearchRequest  true  "filtros de búsqueda"
// @Success      200   {object}  dto.CustomerSearchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/customers/search [post]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	var in dto.CustomerSearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	filters := toFilters(in)

	v := customersearch.Validate(filters)
	if !v.IsValid {
		if v.GeneralError != "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MIN_FILTERS", Message: v.GeneralError})
		}
		fields := make([]dto.FieldError, 0, len(v.Errors))
		for _, e := range v.Errors {
			fields = append(fields, dto.FieldError{Field: e.Field, Message: e.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros con formato inválido", Fields: fields})
	}

	out, err := h.search.Search(c.UserContext(), filters)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.RecordAsync(c.UserContext(), audit.RecordInput{
		CashierID:      GetCashierID(c),
		SearchCriteria: criteriaSnapshot(customersearch.Normalize(filters)),
		ResultsCount:   out.TotalCount,
		ActionType:     entity.AuditActionSearch,
	})
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id del cliente"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.detail.GetDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

// Select godoc
// @Summary      Seleccionar cliente para el flujo de pago
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id del cliente"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/select [post]
func (h *CustomerHandler) Select(c *fiber.Ctx) error {
	// El id se usa después de responder (bitácora asíncrona): copia fuera del buffer de fasthttp.
	id := utils.CopyString(c.Params("id"))
	out, err := h.detail.SelectForPayment(c.UserContext(), id)
	if err != nil && !errors.Is(err, domain.ErrCustomerInactive) {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "cliente no encontrado")
	}

	h.audit.RecordAsync(c.UserContext(), audit.RecordInput{
		CashierID:          GetCashierID(c),
		SearchCriteria:     map[string]any{"customerId": id},
		ResultsCount:       1,
		SelectedCustomerID: &id,
		ActionType:         entity.AuditActionSelect,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCards godoc
// @Summary      Tarjetas enmascaradas del cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id del cliente"
// @Success      200  {array}   dto.CardView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/cards [get]
func (h *CustomerHandler) ListCards(c *fiber.Ctx) error {
	id := utils.CopyString(c.Params("id"))
	views, err := h.cards.ListForCustomer(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.RecordAsync(c.UserContext(), audit.RecordInput{
		CashierID:          GetCashierID(c),
		SearchCriteria:     map[string]any{"customerId": id},
		ResultsCount:       len(views),
		SelectedCustomerID: &id,
		ActionType:         entity.AuditActionViewCards,
	})
	return c.JSON(views)
}

func toFilters(in dto.CustomerSearchRequest) entity.CustomerSearchFilters {
	return entity.CustomerSearchFilters{
		PrimaryPhone:   in.PrimaryPhone,
		SecondaryPhone: in.SecondaryPhone,
		ClientNumber:   in.ClientNumber,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		SecondLastName: in.SecondLastName,
		DateOfBirth:    in.DateOfBirth,
		RFC:            in.RFC,
		IFE:            in.IFE,
		Passport:       in.Passport,
		StateID:        in.StateID,
		MunicipalityID: in.MunicipalityID,
		NeighborhoodID: in.NeighborhoodID,
		PostalCode:     in.PostalCode,
	}
}

// criteriaSnapshot solo los filtros llenos, con las llaves del contrato JSON.
func criteriaSnapshot(f entity.CustomerSearchFilters) map[string]any {
	out := map[string]any{}
	for k, v := range map[string]string{
		"primaryPhone":   f.PrimaryPhone,
		"secondaryPhone": f.SecondaryPhone,
		"clientNumber":   f.ClientNumber,
		"firstName":      f.FirstName,
		"lastName":       f.LastName,
		"secondLastName": f.SecondLastName,
		"dateOfBirth":    f.DateOfBirth,
		"rfc":            f.RFC,
		"ife":            f.IFE,
		"passport":       f.Passport,
		"stateId":        f.StateID,
		"municipalityId": f.MunicipalityID,
		"neighborhoodId": f.NeighborhoodID,
		"postalCode":     f.PostalCode,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
