package repository

//go:generate mockgen -source=audit_repository.go -destination=mocks/audit_repository_mock.go -package=mocks

import (
	"context"

	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
)

// AuditLogRepository bitácora de solo anexado; las entradas nunca se modifican ni se borran.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entity.SearchAuditLogEntry) error
}
