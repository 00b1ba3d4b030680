package auditrepo

import (
	"context"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Append writes one audit entry. Entries are insert-only; there is no update
// or delete path anywhere in the repository.
func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
        INSERT INTO audit_log (admin_id, action, target_type, target_id, details, ip_address)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, entry.AdminID, entry.Action, entry.TargetType,
		entry.TargetID, entry.Details, entry.IPAddress)
	if err != nil {
		zap.L().Error("can't append audit entry", zap.String("action", entry.Action), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByTarget(ctx context.Context, targetType string, targetID int) ([]domain.AuditEntry, error) {
	query := `
        SELECT id, admin_id, action, target_type, target_id, details, ip_address, created_at
        FROM audit_log
        WHERE target_type = $1 AND target_id = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, targetType, targetID)
	if err != nil {
		zap.L().Error("can't fetch audit entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		err := rows.Scan(&e.ID, &e.AdminID, &e.Action, &e.TargetType, &e.TargetID, &e.Details, &e.IPAddress, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan audit row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SumCommission totals the platform's COMMISSION_LOG revenue ledger.
func (r *Repository) SumCommission(ctx context.Context) (int64, error) {
	query := `
        SELECT COALESCE(sum((details->>'houseEarnings')::bigint), 0)
        FROM audit_log
        WHERE action = 'COMMISSION_LOG'
    `
	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't sum commission", zap.Error(err))
		return 0, err
	}
	return total, nil
}
