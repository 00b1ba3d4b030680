package withdrawalservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
	withdrawalrepo "github.com/battlearena/battlearena/internal/repo/withdrawal-repo"
)

var (
	ErrNotFound          = errors.New("withdrawal not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAmountTooLow      = errors.New("amount below minimum withdrawal")
	ErrAmountTooHigh     = errors.New("amount above per-request maximum")
	ErrKycRequired       = errors.New("KYC verification required")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrPendingExists     = errors.New("a pending withdrawal request already exists")
	ErrAlreadyProcessed  = errors.New("withdrawal already processed")
	ErrBanned            = errors.New("account is banned")
)

type WithdrawalRepo interface {
	Create(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	MarkProcessed(ctx context.Context, id int, status string, adminID int, reason string) (bool, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	FindPending(ctx context.Context) ([]domain.Withdrawal, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Debit(ctx context.Context, userID int, amount int64) (int64, bool, error)
	IncrementLifetimeWithdrawn(ctx context.Context, userID int, amount int64) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// Limits hold the configured request bounds and the KYC-exempt lifetime
// threshold.
type Limits struct {
	Min          int64
	Max          int64
	KycThreshold int64
}

type Service struct {
	repo      WithdrawalRepo
	userRepo  UserRepo
	txRepo    TransactionRepo
	auditRepo AuditRepo
	txManager pg.TXManager
	notifier  notify.Notifier
	limits    Limits
}

func New(repo WithdrawalRepo, userRepo UserRepo, txRepo TransactionRepo, auditRepo AuditRepo, txManager pg.TXManager, notifier notify.Notifier, limits Limits) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		txRepo:    txRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		notifier:  notifier,
		limits:    limits,
	}
}

// Request validates eligibility and records a pending request. The balance
// check here is advisory; the authoritative conditional debit happens at
// approval time.
func (s *Service) Request(ctx context.Context, userID int, amount int64, upiID string) (*domain.Withdrawal, error) {
	if amount < s.limits.Min {
		return nil, ErrAmountTooLow
	}
	if amount > s.limits.Max {
		return nil, ErrAmountTooHigh
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsBanned {
		return nil, ErrBanned
	}
	if user.LifetimeWithdrawn+amount > s.limits.KycThreshold && user.KycStatus != domain.KycVerified {
		return nil, ErrKycRequired
	}
	if user.WalletBalance < amount {
		return nil, ErrInsufficientFunds
	}

	wd, err := s.repo.Create(ctx, &domain.Withdrawal{
		UserID: userID,
		Amount: amount,
		UpiID:  upiID,
	})
	if errors.Is(err, withdrawalrepo.ErrPendingExists) {
		return nil, ErrPendingExists
	}
	if err != nil {
		zap.L().Error("can't create withdrawal request", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return wd, nil
}

// Handle resolves a pending request. Approval debits the wallet with the
// authoritative conditional update; if the balance has since dropped the
// request stays pending for manual follow-up. The debit, the transaction
// record, the lifetime-withdrawn accrual, the request update, and the audit
// entry commit as one unit.
func (s *Service) Handle(ctx context.Context, adminID, id int, approve bool, reason, ip string) (*domain.Withdrawal, error) {
	wd, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, ErrNotFound
	}
	if wd.Status != domain.WithdrawalPending {
		return nil, ErrAlreadyProcessed
	}

	if approve {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			balanceAfter, ok, err := s.userRepo.Debit(ctx, wd.UserID, wd.Amount)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientFunds
			}

			ok, err = s.repo.MarkProcessed(ctx, id, domain.WithdrawalApproved, adminID, reason)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}

			if _, err := s.txRepo.Create(ctx, &domain.Transaction{
				UserID:       wd.UserID,
				Type:         domain.TxWithdrawal,
				Status:       domain.TxSuccess,
				Amount:       wd.Amount,
				BalanceAfter: balanceAfter,
				Description:  "Withdrawal approved (UPI: " + wd.UpiID + ")",
			}); err != nil {
				return err
			}

			// Lifetime withdrawn accrues at approval, inside the same unit
			// as the debit.
			if err := s.userRepo.IncrementLifetimeWithdrawn(ctx, wd.UserID, wd.Amount); err != nil {
				return err
			}

			details, _ := json.Marshal(map[string]any{
				"amount":       wd.Amount,
				"upiId":        wd.UpiID,
				"balanceAfter": balanceAfter,
			})
			return s.auditRepo.Append(ctx, &domain.AuditEntry{
				AdminID:    adminID,
				Action:     domain.AuditApproveWithdrawal,
				TargetType: "Withdrawal",
				TargetID:   id,
				Details:    string(details),
				IPAddress:  ip,
			})
		})
		if err != nil {
			if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrAlreadyProcessed) {
				zap.L().Error("withdrawal approval failed", zap.Int("withdrawalID", id), zap.Error(err))
			}
			return nil, err
		}
		wd.Status = domain.WithdrawalApproved
		s.notifier.Notify(ctx, wd.UserID, "Withdrawal approved",
			fmt.Sprintf("Your withdrawal of ₹%d has been processed.", wd.Amount))
		return wd, nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.MarkProcessed(ctx, id, domain.WithdrawalRejected, adminID, reason)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyProcessed
		}
		details, _ := json.Marshal(map[string]any{"reason": reason})
		return s.auditRepo.Append(ctx, &domain.AuditEntry{
			AdminID:    adminID,
			Action:     domain.AuditRejectWithdrawal,
			TargetType: "Withdrawal",
			TargetID:   id,
			Details:    string(details),
			IPAddress:  ip,
		})
	})
	if err != nil {
		return nil, err
	}
	wd.Status = domain.WithdrawalRejected
	wd.RejectionReason = reason
	s.notifier.Notify(ctx, wd.UserID, "Withdrawal rejected", "Reason: "+reason)
	return wd, nil
}

func (s *Service) GetByUser(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *Service) GetPending(ctx context.Context) ([]domain.Withdrawal, error) {
	return s.repo.FindPending(ctx)
}
