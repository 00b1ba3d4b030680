package withdrawalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/pg"
	"go.uber.org/zap"
)

// ErrPendingExists surfaces the single-pending-request partial unique index.
var ErrPendingExists = errors.New("pending withdrawal already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const wdColumns = `id, user_id, amount, upi_id, status, admin_id, rejection_reason, requested_at, processed_at`

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.UpiID, &wd.Status, &wd.AdminID,
		&wd.RejectionReason, &wd.RequestedAt, &wd.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) Create(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
        INSERT INTO withdrawals (user_id, amount, upi_id, status)
        VALUES ($1, $2, $3, 'pending')
        RETURNING id, requested_at
    `
	err := r.db.QueryRow(ctx, query, wd.UserID, wd.Amount, wd.UpiID).Scan(&wd.ID, &wd.RequestedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrPendingExists
	}
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	wd.Status = domain.WithdrawalPending
	return wd, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT ` + wdColumns + `
        FROM withdrawals
        WHERE id = $1
    `
	wd, err := scanWithdrawal(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

// MarkProcessed resolves a pending request. The status guard keeps a second
// approve/reject from touching an already processed request.
func (r *Repository) MarkProcessed(ctx context.Context, id int, status string, adminID int, reason string) (bool, error) {
	query := `
        UPDATE withdrawals
        SET status = $1, admin_id = $2, rejection_reason = $3, processed_at = $4
        WHERE id = $5 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, adminID, reason, time.Now(), id)
	if err != nil {
		zap.L().Error("can't mark withdrawal processed", zap.Int("withdrawalID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + wdColumns + `
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY requested_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, nil
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + wdColumns + `
        FROM withdrawals
        WHERE status = 'pending'
        ORDER BY requested_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan pending withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, nil
}

func (r *Repository) CountPending(ctx context.Context) (int, int64, error) {
	query := `
        SELECT count(*), COALESCE(sum(amount), 0)
        FROM withdrawals
        WHERE status = 'pending'
    `
	var count int
	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&count, &total); err != nil {
		zap.L().Error("can't count pending withdrawals", zap.Error(err))
		return 0, 0, err
	}
	return count, total, nil
}
