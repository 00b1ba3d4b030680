package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/battlearena/battlearena/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var txCols = []string{"id", "user_id", "type", "status", "amount", "balance_after", "tournament_id",
	"reference", "utr", "description", "expires_at", "created_at"}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	expiry := time.Now().Add(30 * time.Minute)

	query := regexp.QuoteMeta(`
        INSERT INTO transactions (user_id, type, status, amount, balance_after, tournament_id, reference, description, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `)

	t.Run("Records a pending deposit", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, domain.TxDeposit, domain.TxPending, int64(500), int64(0), (*int)(nil), "DEP-AB12CD34", "", &expiry).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, time.Now()))

		tx, err := repo.Create(ctx, &domain.Transaction{
			UserID:    1,
			Type:      domain.TxDeposit,
			Status:    domain.TxPending,
			Amount:    500,
			Reference: "DEP-AB12CD34",
			ExpiresAt: &expiry,
		})
		assert.NoError(t, err)
		assert.Equal(t, 10, tx.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(1, domain.TxDeposit, domain.TxPending, int64(500), int64(0), (*int)(nil), "DEP-AB12CD34", "", &expiry).
			WillReturnError(errors.New("db error"))

		tx, err := repo.Create(ctx, &domain.Transaction{
			UserID: 1, Type: domain.TxDeposit, Status: domain.TxPending,
			Amount: 500, Reference: "DEP-AB12CD34", ExpiresAt: &expiry,
		})
		assert.Error(t, err)
		assert.Nil(t, tx)
	})
}

func TestRepository_FindByUTR(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Returns the transaction", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .* FROM transactions\s+WHERE utr = \$1`).
			WithArgs("123456789012").
			WillReturnRows(pgxmock.NewRows(txCols).
				AddRow(10, 1, "deposit", "pending", int64(500), int64(0), (*int)(nil),
					"DEP-AB12CD34", "123456789012", "", (*time.Time)(nil), time.Now()))

		tx, err := repo.FindByUTR(ctx, "123456789012")
		assert.NoError(t, err)
		assert.Equal(t, 10, tx.ID)
		assert.Equal(t, "123456789012", tx.UTR)
	})

	t.Run("Unknown UTR yields nil", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .* FROM transactions\s+WHERE utr = \$1`).
			WithArgs("000000000000").
			WillReturnRows(pgxmock.NewRows(txCols))

		tx, err := repo.FindByUTR(ctx, "000000000000")
		assert.NoError(t, err)
		assert.Nil(t, tx)
	})
}

func TestRepository_AttachUTR(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `UPDATE transactions\s+SET utr = \$1\s+WHERE id = \$2 AND status = 'pending'`

	t.Run("Attaches to a pending transaction", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("123456789012", 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.AttachUTR(ctx, 10, "123456789012")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("No-ops once the transaction left pending", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("123456789012", 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.AttachUTR(ctx, 10, "123456789012")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_Resolve(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := `UPDATE transactions\s+SET status = \$1, balance_after = \$2\s+WHERE id = \$3 AND status = 'pending'`

	t.Run("Resolves a pending transaction", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("success", int64(700), 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Resolve(ctx, 10, domain.TxSuccess, 700)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Second resolution reports no effect", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("failed", int64(0), 10).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Resolve(ctx, 10, domain.TxFailed, 0)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_ExpirePending(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(`UPDATE transactions\s+SET status = 'failed'\s+WHERE type = 'deposit' AND status = 'pending' AND expires_at < now\(\)`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))

	ids, err := repo.ExpirePending(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 11}, ids)
}

func TestRepository_FindPendingDeposits(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(`(?s)SELECT .* FROM transactions\s+WHERE type = 'deposit' AND status = 'pending'`).
		WillReturnRows(pgxmock.NewRows(txCols).
			AddRow(10, 1, "deposit", "pending", int64(500), int64(0), (*int)(nil),
				"DEP-AB12CD34", "123456789012", "", (*time.Time)(nil), time.Now()))

	txs, err := repo.FindPendingDeposits(ctx)
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, "DEP-AB12CD34", txs[0].Reference)
}

func TestRepository_AddEvent(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec(`INSERT INTO transaction_events`).
		WithArgs(10, "utr_submitted", "user:1", `{"utr":"123456789012"}`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.AddEvent(ctx, &domain.TransactionEvent{
		TransactionID: 10,
		Action:        "utr_submitted",
		Actor:         "user:1",
		Details:       `{"utr":"123456789012"}`,
	})
	assert.NoError(t, err)
}

func TestRepository_CountPending(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT count\(\*\), COALESCE\(sum\(amount\), 0\)\s+FROM transactions`).
		WithArgs(domain.TxDeposit).
		WillReturnRows(pgxmock.NewRows([]string{"count", "coalesce"}).AddRow(3, int64(1500)))

	count, total, err := repo.CountPending(ctx, domain.TxDeposit)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(1500), total)
}
