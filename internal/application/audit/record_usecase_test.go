package audit_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/Ventanilla-api/internal/application/audit"
	portmocks "github.com/jhoicas/Ventanilla-api/internal/application/ports/mocks"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	repomocks "github.com/jhoicas/Ventanilla-api/internal/domain/repository/mocks"
)

func setup(t *testing.T) (*audit.RecordUseCase, *repomocks.MockAuditLogRepository, *portmocks.MockAuditPublisher) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockAuditLogRepository(ctrl)
	pub := portmocks.NewMockAuditPublisher(ctrl)
	return audit.NewRecordUseCase(repo, pub, nil), repo, pub
}

func TestRecord_PersisteYPublica(t *testing.T) {
	uc, repo, pub := setup(t)
	selected := "c1"

	var stored *entity.SearchAuditLogEntry
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *entity.SearchAuditLogEntry) error {
			stored = e
			return nil
		})
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	out, err := uc.Record(context.Background(), audit.RecordInput{
		CashierID:          "cajero-7",
		SearchCriteria:     map[string]any{"firstName": "ESQUIVEL"},
		ResultsCount:       3,
		SelectedCustomerID: &selected,
		ActionType:         entity.AuditActionSelect,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, stored.ID, out.ID)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, time.UTC, out.Timestamp.Location())
	assert.Equal(t, "cajero-7", stored.CashierID)
	assert.Equal(t, 3, stored.ResultsCount)
	assert.Equal(t, "ESQUIVEL", stored.SearchCriteria["firstName"])
	assert.Equal(t, &selected, stored.SelectedCustomerID)
}

func TestRecord_CriteriosConDatosDeTarjetaSeSanitizan(t *testing.T) {
	uc, repo, pub := setup(t)

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *entity.SearchAuditLogEntry) error {
			assert.Equal(t, "**** **** **** 9012", e.SearchCriteria["cardNumber"])
			assert.NotContains(t, e.SearchCriteria, "cvv")
			return nil
		})
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.Record(context.Background(), audit.RecordInput{
		CashierID:      "cajero-7",
		SearchCriteria: map[string]any{"cardNumber": "4532123456789012", "cvv": "123"},
		ActionType:     entity.AuditActionViewCards,
	})
	require.NoError(t, err)
}

func TestRecord_CriteriosNilSeGuardanVacios(t *testing.T) {
	uc, repo, pub := setup(t)

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *entity.SearchAuditLogEntry) error {
			assert.NotNil(t, e.SearchCriteria)
			return nil
		})
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.Record(context.Background(), audit.RecordInput{CashierID: "c", ActionType: entity.AuditActionSearch})
	require.NoError(t, err)
}

func TestRecord_FalloAlPublicarNoFalla(t *testing.T) {
	uc, repo, pub := setup(t)

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker caído"))

	out, err := uc.Record(context.Background(), audit.RecordInput{CashierID: "c", ActionType: entity.AuditActionSearch})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
}

func TestRecord_FalloAlPersistirNoPublica(t *testing.T) {
	uc, repo, _ := setup(t)

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disco lleno"))

	out, err := uc.Record(context.Background(), audit.RecordInput{CashierID: "c", ActionType: entity.AuditActionSearch})
	assert.Nil(t, out)
	assert.Error(t, err)
}

func TestRecord_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		in   audit.RecordInput
	}{
		{"sin cajero", audit.RecordInput{ActionType: entity.AuditActionSearch}},
		{"accion desconocida", audit.RecordInput{CashierID: "c", ActionType: "delete"}},
		{"conteo negativo", audit.RecordInput{CashierID: "c", ActionType: entity.AuditActionSearch, ResultsCount: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _ := setup(t)
			_, err := uc.Record(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecordAsync_NoDependeDelContextoDeLaPeticion(t *testing.T) {
	uc, repo, pub := setup(t)

	var done atomic.Bool
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *entity.SearchAuditLogEntry) error {
			assert.NoError(t, ctx.Err())
			return nil
		})
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *entity.SearchAuditLogEntry) error {
			done.Store(true)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	uc.RecordAsync(ctx, audit.RecordInput{CashierID: "c", ActionType: entity.AuditActionSearch})

	assert.Eventually(t, done.Load, time.Second, 10*time.Millisecond)
}
