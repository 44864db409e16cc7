package card

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
	"github.com/jhoicas/Ventanilla-api/pkg/cardsecurity"
	"github.com/jhoicas/Ventanilla-api/pkg/logger"
)

// Resultados de la compuerta de selección reportados a métricas.
const (
	GateApproved = "approved"
	GateRejected = "rejected"
)

// CardUseCase consulta de tarjetas enmascaradas y selección de tarjeta para pago.
type CardUseCase struct {
	cards     repository.CardRepository
	customers repository.CustomerRepository
	metrics   ports.Metrics
	log       *logger.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewCardUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewCardUseCase(cards repository.CardRepository, customers repository.CustomerRepository, metrics ports.Metrics, log *logger.Logger) *CardUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CardUseCase{
		cards:     cards,
		customers: customers,
		metrics:   metrics,
		log:       log.Component("cards"),
		tracer:    otel.Tracer("ventanilla/card"),
		now:       time.Now,
	}
}

// WithClock fija el reloj usado por la validación de vigencia.
func (uc *CardUseCase) WithClock(now func() time.Time) *CardUseCase {
	uc.now = now
	return uc
}

// ListForCustomer devuelve las tarjetas del cliente. Un cliente inexistente o sin tarjetas
// produce una lista vacía; cualquier fallo de acceso es domain.ErrCardFetchFailed.
func (uc *CardUseCase) ListForCustomer(ctx context.Context, customerID string) ([]dto.CardView, error) {
	ctx, span := uc.tracer.Start(ctx, "card.list")
	defer span.End()

	holder, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, uc.fetchFailed(span, err)
	}
	if holder == nil {
		return []dto.CardView{}, nil
	}
	list, err := uc.cards.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, uc.fetchFailed(span, err)
	}

	now := uc.now()
	out := make([]dto.CardView, 0, len(list))
	for _, c := range list {
		out = append(out, BuildView(c, holder, now))
	}
	span.SetAttributes(attribute.Int("card.count", len(out)))
	return out, nil
}

// GetByID devuelve (nil, nil) si la tarjeta o su titular no existen.
func (uc *CardUseCase) GetByID(ctx context.Context, cardID string) (*dto.CardView, error) {
	ctx, span := uc.tracer.Start(ctx, "card.get")
	defer span.End()

	c, holder, err := uc.load(ctx, cardID)
	if err != nil {
		return nil, uc.fetchFailed(span, err)
	}
	if c == nil {
		return nil, nil
	}
	v := BuildView(c, holder, uc.now())
	return &v, nil
}

// SelectForPayment aplica la compuerta de transacción: el titular debe estar activo y la tarjeta
// debe pasar ValidateForTransaction. Un rechazo devuelve la vista junto con
// domain.ErrCardNotSelectable (o domain.ErrCustomerInactive).
func (uc *CardUseCase) SelectForPayment(ctx context.Context, cardID string) (*dto.CardSelectionResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "card.select")
	defer span.End()

	c, holder, err := uc.load(ctx, cardID)
	if err != nil {
		return nil, uc.fetchFailed(span, err)
	}
	if c == nil {
		return nil, nil
	}

	v := BuildView(c, holder, uc.now())
	out := &dto.CardSelectionResponse{CustomerID: holder.ID, Card: v}

	uc.log.Debug().
		Fields(cardsecurity.SanitizeForLogging(map[string]any{
			"cardId":     c.ID,
			"cardNumber": c.Number,
			"customerId": holder.ID,
			"status":     c.Status,
		})).
		Bool("selectable", v.Selectable).
		Msg("selección de tarjeta")

	if !holder.IsActive() {
		uc.metrics.IncCardGate(GateRejected)
		return out, domain.ErrCustomerInactive
	}
	if !v.Selectable {
		uc.metrics.IncCardGate(GateRejected)
		return out, fmt.Errorf("%w: %s", domain.ErrCardNotSelectable, v.RejectReason)
	}
	uc.metrics.IncCardGate(GateApproved)
	return out, nil
}

// load obtiene la tarjeta y verifica que su titular siga existiendo.
func (uc *CardUseCase) load(ctx context.Context, cardID string) (*entity.Card, *entity.Customer, error) {
	c, err := uc.cards.GetByID(ctx, cardID)
	if err != nil || c == nil {
		return nil, nil, err
	}
	holder, err := uc.customers.GetByID(ctx, c.CustomerID)
	if err != nil || holder == nil {
		return nil, nil, err
	}
	return c, holder, nil
}

func (uc *CardUseCase) fetchFailed(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "card fetch")
	return fmt.Errorf("%w: %w", domain.ErrCardFetchFailed, err)
}
