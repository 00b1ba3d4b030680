package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/pkg/auth"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userCols = []string{"id", "phone", "username", "game_name", "password_hash", "role", "wallet_balance",
	"lifetime_withdrawn", "kyc_status", "is_banned", "ban_reason", "created_at"}

func userRow(id int, balance int64) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).
		AddRow(id, "+919876543210", "rahul", "ProGamer", "hashed", "user", balance,
			int64(0), "none", false, "", time.Now())
}

func TestRepository_FindByPhone(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Returns the user", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .* FROM users\s+WHERE phone = \$1`).
			WithArgs("+919876543210").
			WillReturnRows(userRow(1, 1000))

		user, err := repo.FindByPhone(ctx, "+919876543210")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, int64(1000), user.WalletBalance)
	})

	t.Run("Unknown phone yields nil", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .* FROM users\s+WHERE phone = \$1`).
			WithArgs("+910000000000").
			WillReturnRows(pgxmock.NewRows(userCols))

		user, err := repo.FindByPhone(ctx, "+910000000000")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO users (phone, username, game_name, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `)

	t.Run("Creates with a zero wallet and no KYC", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("+919876543210", "rahul", "ProGamer", "hashed", auth.RoleUser).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		user, err := repo.Create(ctx, &domain.User{
			Phone: "+919876543210", Username: "rahul", GameName: "ProGamer",
			PasswordHash: "hashed", Role: auth.RoleUser,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, domain.KycNone, user.KycStatus)
		assert.Equal(t, int64(0), user.WalletBalance)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("+919876543210", "rahul", "ProGamer", "hashed", auth.RoleUser).
			WillReturnError(errors.New("db error"))

		user, err := repo.Create(ctx, &domain.User{
			Phone: "+919876543210", Username: "rahul", GameName: "ProGamer",
			PasswordHash: "hashed", Role: auth.RoleUser,
		})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Credit(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(`UPDATE users\s+SET wallet_balance = wallet_balance \+ \$1`).
		WithArgs(int64(500), 1).
		WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(int64(1500)))

	balanceAfter, err := repo.Credit(ctx, 1, 500)
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), balanceAfter)
}

func TestRepository_Debit(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `UPDATE users\s+SET wallet_balance = wallet_balance - \$1\s+WHERE id = \$2 AND wallet_balance >= \$1`

	t.Run("Debits when the balance covers the amount", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(300), 1).
			WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(int64(700)))

		balanceAfter, ok, err := repo.Debit(ctx, 1, 300)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(700), balanceAfter)
	})

	t.Run("Refuses without touching the row when short", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(5000), 1).
			WillReturnError(pgx.ErrNoRows)

		_, ok, err := repo.Debit(ctx, 1, 5000)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_SetBan(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `UPDATE users\s+SET is_banned = \$1, ban_reason = \$2\s+WHERE id = \$3`

	t.Run("Flips the flag", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(true, "multi-accounting", 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetBan(ctx, 7, true, "multi-accounting")
		assert.NoError(t, err)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(true, "", 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetBan(ctx, 99, true, "")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRepository_IncrementLifetimeWithdrawn(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec(`UPDATE users\s+SET lifetime_withdrawn = lifetime_withdrawn \+ \$1`).
		WithArgs(int64(500), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementLifetimeWithdrawn(ctx, 1, 500)
	assert.NoError(t, err)
}

func TestRepository_CountUsers(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT count\(\*\)\s+FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(120))

	count, err := repo.CountUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 120, count)
}
