package ports

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
)

// AuditLogRepository defines the persistence contract for audit entries.
// The trail is append-only: entries are only ever added, inside the same
// transaction as the mutation they record.
type AuditLogRepository interface {
	// Add appends an audit entry.
	Add(ctx context.Context, entry *audit.Entry) error
}
