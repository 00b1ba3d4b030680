package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTransactionRepo, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	txRepo := NewMockTransactionRepo(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(userRepo, txRepo, auditRepo, txManager, &notify.LogNotifier{}, 30*time.Minute)
	defer ctrl.Finish()
	return service, userRepo, txRepo, auditRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestCredit(t *testing.T) {
	service, userRepo, txRepo, _, txManager := NewMock(t)
	passthroughTx(txManager)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Credit records balance and ledger entry",
			prepareMock: func() {
				userRepo.EXPECT().Credit(gomock.Any(), 1, int64(200)).Return(int64(700), nil)
				txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TxSuccess, tx.Status)
						assert.Equal(t, int64(700), tx.BalanceAfter)
						tx.ID = 10
						return tx, nil
					})
			},
			expectedError: nil,
		},
		{
			name: "Credit propagates repo errors",
			prepareMock: func() {
				userRepo.EXPECT().Credit(gomock.Any(), 1, int64(200)).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			tx, err := service.Credit(context.Background(), 1, 200, TxMeta{Type: domain.TxPrizeWinnings})
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, tx)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(700), tx.BalanceAfter)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, userRepo, txRepo, _, txManager := NewMock(t)
	passthroughTx(txManager)

	t.Run("Debit succeeds when balance covers the amount", func(t *testing.T) {
		userRepo.EXPECT().Debit(gomock.Any(), 1, int64(100)).Return(int64(400), true, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				return tx, nil
			})

		tx, err := service.Debit(context.Background(), 1, 100, TxMeta{Type: domain.TxEntryFee})
		assert.NoError(t, err)
		assert.Equal(t, int64(400), tx.BalanceAfter)
	})

	t.Run("Debit fails on insufficient funds without a ledger entry", func(t *testing.T) {
		userRepo.EXPECT().Debit(gomock.Any(), 1, int64(100)).Return(int64(0), false, nil)

		tx, err := service.Debit(context.Background(), 1, 100, TxMeta{Type: domain.TxEntryFee})
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Nil(t, tx)
	})
}

func TestGetBalance(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)

	t.Run("Returns wallet balance", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, WalletBalance: 550}, nil)

		balance, err := service.GetBalance(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(550), balance)
	})

	t.Run("Unknown user", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		_, err := service.GetBalance(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInitiateDeposit(t *testing.T) {
	service, userRepo, txRepo, _, _ := NewMock(t)

	t.Run("Opens a pending deposit with reference and expiry", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxPending, tx.Status)
				assert.Equal(t, domain.TxDeposit, tx.Type)
				assert.NotEmpty(t, tx.Reference)
				assert.NotNil(t, tx.ExpiresAt)
				tx.ID = 5
				return tx, nil
			})

		tx, err := service.InitiateDeposit(context.Background(), 1, 200)
		assert.NoError(t, err)
		assert.Equal(t, 5, tx.ID)
	})

	t.Run("Banned accounts cannot deposit", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, IsBanned: true}, nil)

		_, err := service.InitiateDeposit(context.Background(), 2, 200)
		assert.ErrorIs(t, err, ErrBanned)
	})
}

func TestSubmitUTR(t *testing.T) {
	service, _, txRepo, _, _ := NewMock(t)
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Attaches UTR and logs the event",
			prepareMock: func() {
				txRepo.EXPECT().FindByUTR(gomock.Any(), "123456789012").Return(nil, nil)
				txRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{
					ID: 5, UserID: 1, Amount: 200, Status: domain.TxPending, ExpiresAt: &expires,
				}, nil)
				txRepo.EXPECT().AttachUTR(gomock.Any(), 5, "123456789012").Return(true, nil)
				txRepo.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Rejects a UTR already used elsewhere",
			prepareMock: func() {
				txRepo.EXPECT().FindByUTR(gomock.Any(), "123456789012").Return(&domain.Transaction{ID: 7}, nil)
			},
			expectedError: ErrDuplicateUTR,
		},
		{
			name: "Rejects an expired deposit",
			prepareMock: func() {
				past := time.Now().Add(-time.Minute)
				txRepo.EXPECT().FindByUTR(gomock.Any(), "123456789012").Return(nil, nil)
				txRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{
					ID: 5, Status: domain.TxPending, ExpiresAt: &past,
				}, nil)
			},
			expectedError: ErrExpired,
		},
		{
			name: "Rejects an already processed transaction",
			prepareMock: func() {
				txRepo.EXPECT().FindByUTR(gomock.Any(), "123456789012").Return(nil, nil)
				txRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{
					ID: 5, Status: domain.TxSuccess,
				}, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.SubmitUTR(context.Background(), 5, "123456789012")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveDeposit(t *testing.T) {
	service, userRepo, txRepo, auditRepo, txManager := NewMock(t)
	passthroughTx(txManager)
	expires := time.Now().Add(time.Hour)

	t.Run("Approval credits the wallet and audits", func(t *testing.T) {
		txRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{
			ID: 5, UserID: 1, Type: domain.TxDeposit, Status: domain.TxPending, Amount: 200, ExpiresAt: &expires,
		}, nil)
		userRepo.EXPECT().Credit(gomock.Any(), 1, int64(200)).Return(int64(700), nil)
		txRepo.EXPECT().Resolve(gomock.Any(), 5, domain.TxSuccess, int64(700)).Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, domain.AuditApproveDeposit, entry.Action)
				assert.Equal(t, 9, entry.AdminID)
				return nil
			})
		txRepo.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := service.ResolveDeposit(context.Background(), 9, 5, true, "", "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, domain.TxSuccess, tx.Status)
		assert.Equal(t, int64(700), tx.BalanceAfter)
	})

	t.Run("Rejection marks failed without touching the balance", func(t *testing.T) {
		txRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{
			ID: 5, UserID: 1, Type: domain.TxDeposit, Status: domain.TxPending, Amount: 200, ExpiresAt: &expires,
		}, nil)
		txRepo.EXPECT().Resolve(gomock.Any(), 5, domain.TxFailed, gomock.Any()).Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, domain.AuditRejectDeposit, entry.Action)
				return nil
			})
		txRepo.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(nil)

		tx, err := service.ResolveDeposit(context.Background(), 9, 5, false, "UTR mismatch", "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, domain.TxFailed, tx.Status)
	})

	t.Run("Re-resolution is rejected", func(t *testing.T) {
		txRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Transaction{
			ID: 5, Type: domain.TxDeposit, Status: domain.TxSuccess,
		}, nil)

		_, err := service.ResolveDeposit(context.Background(), 9, 5, true, "", "10.0.0.1")
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})
}

func TestExpireDeposits(t *testing.T) {
	service, _, txRepo, _, _ := NewMock(t)

	txRepo.EXPECT().ExpirePending(gomock.Any()).Return([]int{3, 4}, nil)
	txRepo.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := service.ExpireDeposits(context.Background())
	assert.NoError(t, err)
}
