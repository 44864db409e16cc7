package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
	"github.com/jhoicas/Ventanilla-api/pkg/cardsecurity"
	"github.com/jhoicas/Ventanilla-api/pkg/logger"
)

const asyncTimeout = 5 * time.Second

// RecordInput datos de una acción auditable del cajero.
type RecordInput struct {
	CashierID          string
	SearchCriteria     map[string]any
	ResultsCount       int
	SelectedCustomerID *string
	ActionType         string
}

// RecordUseCase bitácora de búsqueda: persiste en PostgreSQL y después publica al broker.
type RecordUseCase struct {
	repo      repository.AuditLogRepository
	publisher ports.AuditPublisher
	log       *logger.Logger
	now       func() time.Time
}

// NewRecordUseCase construye el caso de uso. publisher puede ser nil (sin publicación).
func NewRecordUseCase(repo repository.AuditLogRepository, publisher ports.AuditPublisher, log *logger.Logger) *RecordUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RecordUseCase{
		repo:      repo,
		publisher: publisher,
		log:       log.Component("audit"),
		now:       time.Now,
	}
}

// Record valida, persiste y publica la entrada. Un fallo al publicar solo se registra en el log:
// la entrada ya quedó almacenada y se devuelve igual.
func (uc *RecordUseCase) Record(ctx context.Context, in RecordInput) (*dto.AuditEntryResponse, error) {
	if in.CashierID == "" {
		return nil, fmt.Errorf("%w: cashierId requerido", domain.ErrInvalidInput)
	}
	if !entity.IsValidAuditAction(in.ActionType) {
		return nil, fmt.Errorf("%w: actionType debe ser search, select o view_cards", domain.ErrInvalidInput)
	}
	if in.ResultsCount < 0 {
		return nil, fmt.Errorf("%w: resultsCount no puede ser negativo", domain.ErrInvalidInput)
	}

	criteria := map[string]any{}
	if in.SearchCriteria != nil {
		criteria = cardsecurity.SanitizeForLogging(in.SearchCriteria)
	}
	entry := &entity.SearchAuditLogEntry{
		ID:                 uuid.New().String(),
		CashierID:          in.CashierID,
		Timestamp:          uc.now().UTC(),
		SearchCriteria:     criteria,
		ResultsCount:       in.ResultsCount,
		SelectedCustomerID: in.SelectedCustomerID,
		ActionType:         in.ActionType,
	}
	if err := uc.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("audit append: %w", err)
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, entry); err != nil {
			uc.log.Warn().Err(err).
				Str("audit_id", entry.ID).
				Str("action", entry.ActionType).
				Msg("no se pudo publicar la entrada de bitácora")
		}
	}
	return &dto.AuditEntryResponse{ID: entry.ID, Timestamp: entry.Timestamp}, nil
}

// RecordAsync registra sin bloquear la petición del cajero. El contexto de la petición no
// cancela la escritura; los fallos se registran en warn.
func (uc *RecordUseCase) RecordAsync(ctx context.Context, in RecordInput) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, asyncTimeout)
		defer cancel()
		if _, err := uc.Record(ctx, in); err != nil {
			uc.log.Warn().Err(err).
				Str("cashier_id", in.CashierID).
				Str("action", in.ActionType).
				Msg("bitácora de búsqueda no registrada")
		}
	}()
}
