package userrepo

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

const userColumns = `id, phone, username, game_name, password_hash, role, wallet_balance,
		lifetime_withdrawn, kyc_status, is_banned, ban_reason, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Phone, &u.Username, &u.GameName, &u.PasswordHash, &u.Role,
		&u.WalletBalance, &u.LifetimeWithdrawn, &u.KycStatus, &u.IsBanned, &u.BanReason, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE phone = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by phone", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (phone, username, game_name, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Phone, user.Username, user.GameName, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	user.KycStatus = domain.KycNone
	return user, nil
}

// Credit adds amount to the wallet and returns the resulting balance.
func (r *Repository) Credit(ctx context.Context, userID int, amount int64) (int64, error) {
	query := `
        UPDATE users
        SET wallet_balance = wallet_balance + $1
        WHERE id = $2
        RETURNING wallet_balance
    `
	var balanceAfter int64
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balanceAfter)
	if err != nil {
		zap.L().Error("can't credit wallet", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return balanceAfter, nil
}

// Debit subtracts amount only when the balance covers it, as a single
// conditional update. ok is false when the balance was insufficient (or the
// user does not exist); no row is changed in that case.
func (r *Repository) Debit(ctx context.Context, userID int, amount int64) (int64, bool, error) {
	query := `
        UPDATE users
        SET wallet_balance = wallet_balance - $1
        WHERE id = $2 AND wallet_balance >= $1
        RETURNING wallet_balance
    `
	var balanceAfter int64
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balanceAfter)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		zap.L().Error("can't debit wallet", zap.Int("userID", userID), zap.Error(err))
		return 0, false, err
	}
	return balanceAfter, true, nil
}

func (r *Repository) IncrementLifetimeWithdrawn(ctx context.Context, userID int, amount int64) error {
	query := `
        UPDATE users
        SET lifetime_withdrawn = lifetime_withdrawn + $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, amount, userID); err != nil {
		zap.L().Error("can't increment lifetime withdrawn", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetBan(ctx context.Context, userID int, banned bool, reason string) error {
	query := `
        UPDATE users
        SET is_banned = $1, ban_reason = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, banned, reason, userID)
	if err != nil {
		zap.L().Error("can't update ban flag", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SetKycStatus(ctx context.Context, userID int, status string) error {
	query := `
        UPDATE users
        SET kyc_status = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, userID)
	if err != nil {
		zap.L().Error("can't update kyc status", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	query := `
        SELECT count(*)
        FROM users
        WHERE role = 'user'
    `
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}
