package disputerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const dispColumns = `id, user_id, tournament_id, transaction_id, claim_text, status, admin_response, resolved_by, resolved_at, created_at`

func scanDispute(row pgx.Row) (*domain.Dispute, error) {
	var d domain.Dispute
	err := row.Scan(&d.ID, &d.UserID, &d.TournamentID, &d.TransactionID, &d.ClaimText,
		&d.Status, &d.AdminResponse, &d.ResolvedBy, &d.ResolvedAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, d *domain.Dispute) (*domain.Dispute, error) {
	query := `
        INSERT INTO disputes (user_id, tournament_id, transaction_id, claim_text, status)
        VALUES ($1, $2, $3, $4, 'pending')
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, d.UserID, d.TournamentID, d.TransactionID, d.ClaimText).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		zap.L().Error("can't save dispute", zap.Error(err))
		return nil, err
	}
	d.Status = domain.DisputePending
	return d, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Dispute, error) {
	query := `
        SELECT ` + dispColumns + `
        FROM disputes
        WHERE id = $1
    `
	d, err := scanDispute(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find dispute", zap.Error(err))
		return nil, err
	}
	return d, nil
}

// Resolve closes a pending dispute. The status guard keeps a second decision
// from overwriting the first.
func (r *Repository) Resolve(ctx context.Context, id int, status string, adminID int, response string) (bool, error) {
	query := `
        UPDATE disputes
        SET status = $1, resolved_by = $2, admin_response = $3, resolved_at = $4
        WHERE id = $5 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, adminID, response, time.Now(), id)
	if err != nil {
		zap.L().Error("can't resolve dispute", zap.Int("disputeID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Dispute, error) {
	query := `
        SELECT ` + dispColumns + `
        FROM disputes
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch disputes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disputes []domain.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			zap.L().Error("failed to scan dispute row", zap.Error(err))
			return nil, err
		}
		disputes = append(disputes, *d)
	}
	return disputes, nil
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Dispute, error) {
	query := `
        SELECT ` + dispColumns + `
        FROM disputes
        WHERE status = 'pending'
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch pending disputes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disputes []domain.Dispute
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			zap.L().Error("failed to scan pending dispute row", zap.Error(err))
			return nil, err
		}
		disputes = append(disputes, *d)
	}
	return disputes, nil
}
