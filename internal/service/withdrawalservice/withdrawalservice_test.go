package withdrawalservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
	withdrawalrepo "github.com/battlearena/battlearena/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Service, *MockWithdrawalRepo, *MockUserRepo, *MockTransactionRepo, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockWithdrawalRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	txRepo := NewMockTransactionRepo(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(repo, userRepo, txRepo, auditRepo, txManager, &notify.LogNotifier{}, Limits{
		Min:          50,
		Max:          2000,
		KycThreshold: 5000,
	})
	defer ctrl.Finish()
	return service, repo, userRepo, txRepo, auditRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestRequest(t *testing.T) {
	service, repo, userRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Accepts a valid request",
			amount: 500,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, WalletBalance: 1000, LifetimeWithdrawn: 0, KycStatus: domain.KycNone,
				}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
						wd.ID = 4
						wd.Status = domain.WithdrawalPending
						return wd, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "Below minimum",
			amount:        20,
			prepareMock:   func() {},
			expectedError: ErrAmountTooLow,
		},
		{
			name:          "Above maximum",
			amount:        5000,
			prepareMock:   func() {},
			expectedError: ErrAmountTooHigh,
		},
		{
			name:   "Crossing the lifetime threshold without KYC",
			amount: 60,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, WalletBalance: 1000, LifetimeWithdrawn: 4950, KycStatus: domain.KycNone,
				}, nil)
			},
			expectedError: ErrKycRequired,
		},
		{
			name:   "Verified KYC passes the threshold",
			amount: 60,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, WalletBalance: 1000, LifetimeWithdrawn: 4950, KycStatus: domain.KycVerified,
				}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
						wd.ID = 5
						return wd, nil
					})
			},
			expectedError: nil,
		},
		{
			name:   "Balance does not cover the amount",
			amount: 800,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, WalletBalance: 500,
				}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:   "Banned account",
			amount: 500,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, WalletBalance: 1000, IsBanned: true,
				}, nil)
			},
			expectedError: ErrBanned,
		},
		{
			name:   "A pending request already exists",
			amount: 500,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{
					ID: 1, WalletBalance: 1000,
				}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, withdrawalrepo.ErrPendingExists)
			},
			expectedError: ErrPendingExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wd, err := service.Request(context.Background(), 1, tt.amount, "player1@upi")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wd)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, wd)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	service, repo, userRepo, txRepo, auditRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	pending := func() *domain.Withdrawal {
		return &domain.Withdrawal{ID: 4, UserID: 1, Amount: 500, UpiID: "player1@upi", Status: domain.WithdrawalPending}
	}

	t.Run("Approval debits and accrues lifetime withdrawn", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)
		userRepo.EXPECT().Debit(gomock.Any(), 1, int64(500)).Return(int64(500), true, nil)
		repo.EXPECT().MarkProcessed(gomock.Any(), 4, domain.WithdrawalApproved, 9, "").Return(true, nil)
		txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxWithdrawal, tx.Type)
				assert.Equal(t, int64(500), tx.BalanceAfter)
				return tx, nil
			})
		userRepo.EXPECT().IncrementLifetimeWithdrawn(gomock.Any(), 1, int64(500)).Return(nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, domain.AuditApproveWithdrawal, entry.Action)
				return nil
			})

		wd, err := service.Handle(context.Background(), 9, 4, true, "", "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, domain.WithdrawalApproved, wd.Status)
	})

	t.Run("Approval fails when the balance has since dropped", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)
		userRepo.EXPECT().Debit(gomock.Any(), 1, int64(500)).Return(int64(0), false, nil)

		_, err := service.Handle(context.Background(), 9, 4, true, "", "10.0.0.1")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("Rejection records the reason without a debit", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)
		repo.EXPECT().MarkProcessed(gomock.Any(), 4, domain.WithdrawalRejected, 9, "suspicious activity").Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, domain.AuditRejectWithdrawal, entry.Action)
				return nil
			})

		wd, err := service.Handle(context.Background(), 9, 4, false, "suspicious activity", "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, domain.WithdrawalRejected, wd.Status)
		assert.Equal(t, "suspicious activity", wd.RejectionReason)
	})

	t.Run("Already processed", func(t *testing.T) {
		wd := pending()
		wd.Status = domain.WithdrawalApproved
		repo.EXPECT().FindByID(gomock.Any(), 4).Return(wd, nil)

		_, err := service.Handle(context.Background(), 9, 4, true, "", "10.0.0.1")
		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("Unknown withdrawal", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		_, err := service.Handle(context.Background(), 9, 99, true, "", "10.0.0.1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
