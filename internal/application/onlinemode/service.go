package onlinemode

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/application/ports"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// Nombres de dependencia reportados a métricas.
const (
	DependencyDatabase = "database"
	DependencyBroker   = "broker"
)

const defaultTimeout = 2 * time.Second

// Service verifica el modo en línea: el registro de clientes y el broker de mensajes deben responder.
type Service struct {
	database ports.DependencyChecker
	broker   ports.DependencyChecker
	timeout  time.Duration
	metrics  ports.Metrics
	now      func() time.Time
}

// NewService construye el verificador. Un checker nil se reporta siempre como caído.
func NewService(database, broker ports.DependencyChecker, timeout time.Duration, metrics ports.Metrics) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &Service{
		database: database,
		broker:   broker,
		timeout:  timeout,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Check consulta ambas dependencias en paralelo con el timeout configurado.
func (s *Service) Check(ctx context.Context) entity.OnlineStatus {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var st entity.OnlineStatus
	var g errgroup.Group
	g.Go(func() error {
		st.Database = s.ping(ctx, DependencyDatabase, s.database)
		return nil
	})
	g.Go(func() error {
		st.Broker = s.ping(ctx, DependencyBroker, s.broker)
		return nil
	})
	_ = g.Wait()

	st.CheckedAt = s.now().UTC()
	return st
}

// Status versión DTO de Check para GET /api/online-mode.
func (s *Service) Status(ctx context.Context) dto.OnlineModeResponse {
	st := s.Check(ctx)
	return dto.OnlineModeResponse{
		Status:    st.Status(),
		Database:  st.Database,
		Broker:    st.Broker,
		Reason:    st.Reason(),
		Timestamp: st.CheckedAt,
	}
}

func (s *Service) ping(ctx context.Context, name string, c ports.DependencyChecker) bool {
	ok := c != nil && c.Ping(ctx) == nil
	s.metrics.IncOnlineCheck(name, ok)
	return ok
}
