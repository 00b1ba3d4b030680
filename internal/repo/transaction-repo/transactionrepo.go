package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

const txColumns = `id, user_id, type, status, amount, balance_after, tournament_id,
		reference, utr, description, expires_at, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Status, &tx.Amount, &tx.BalanceAfter,
		&tx.TournamentID, &tx.Reference, &tx.UTR, &tx.Description, &tx.ExpiresAt, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, type, status, amount, balance_after, tournament_id, reference, description, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Type, tx.Status, tx.Amount, tx.BalanceAfter,
		tx.TournamentID, tx.Reference, tx.Description, tx.ExpiresAt).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE id = $1
    `
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByUTR(ctx context.Context, utr string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE utr = $1
    `
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, utr))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction by utr", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// AttachUTR records the submitted reference on a still-pending transaction.
// ok is false when the transaction has already left pending.
func (r *Repository) AttachUTR(ctx context.Context, id int, utr string) (bool, error) {
	query := `
        UPDATE transactions
        SET utr = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, utr, id)
	if err != nil {
		zap.L().Error("can't attach utr", zap.Int("transactionID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Resolve moves a pending transaction to its terminal status, snapshotting
// the balance. The status guard makes resolution idempotent-safe: a second
// call finds no pending row and reports ok=false.
func (r *Repository) Resolve(ctx context.Context, id int, status string, balanceAfter int64) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1, balance_after = $2
        WHERE id = $3 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, balanceAfter, id)
	if err != nil {
		zap.L().Error("can't resolve transaction", zap.Int("transactionID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

func (r *Repository) FindPendingDeposits(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE type = 'deposit' AND status = 'pending'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan pending deposit row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	return txs, nil
}

// ExpirePending fails every pending deposit whose expiry window has passed
// and returns the affected ids.
func (r *Repository) ExpirePending(ctx context.Context) ([]int, error) {
	query := `
        UPDATE transactions
        SET status = 'failed'
        WHERE type = 'deposit' AND status = 'pending' AND expires_at < now()
        RETURNING id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't expire pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan expired deposit id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Repository) AddEvent(ctx context.Context, event *domain.TransactionEvent) error {
	query := `
        INSERT INTO transaction_events (transaction_id, action, actor, details)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, event.TransactionID, event.Action, event.Actor, event.Details); err != nil {
		zap.L().Error("can't append transaction event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountPending(ctx context.Context, txType string) (int, int64, error) {
	query := `
        SELECT count(*), COALESCE(sum(amount), 0)
        FROM transactions
        WHERE type = $1 AND status = 'pending'
    `
	var count int
	var total int64
	if err := r.db.QueryRow(ctx, query, txType).Scan(&count, &total); err != nil {
		zap.L().Error("can't count pending transactions", zap.Error(err))
		return 0, 0, err
	}
	return count, total, nil
}
