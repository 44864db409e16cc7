package ports

//go:generate mockgen -source=audit_port.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// AuditPublisher publica entradas de bitácora ya persistidas hacia el broker de mensajes.
type AuditPublisher interface {
	Publish(ctx context.Context, entry *entity.SearchAuditLogEntry) error
}

// DependencyChecker verifica que una dependencia externa responda. nil = sana.
type DependencyChecker interface {
	Ping(ctx context.Context) error
}
