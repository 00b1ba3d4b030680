package walletservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("transaction not found")
	ErrAlreadyProcessed  = errors.New("transaction already processed")
	ErrExpired           = errors.New("transaction expired")
	ErrDuplicateUTR      = errors.New("UTR has already been used")
	ErrBanned            = errors.New("account is banned")
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Credit(ctx context.Context, userID int, amount int64) (int64, error)
	Debit(ctx context.Context, userID int, amount int64) (int64, bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	FindByUTR(ctx context.Context, utr string) (*domain.Transaction, error)
	AttachUTR(ctx context.Context, id int, utr string) (bool, error)
	Resolve(ctx context.Context, id int, status string, balanceAfter int64) (bool, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindPendingDeposits(ctx context.Context) ([]domain.Transaction, error)
	ExpirePending(ctx context.Context) ([]int, error)
	AddEvent(ctx context.Context, event *domain.TransactionEvent) error
}

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

// TxMeta describes the ledger entry that accompanies a balance mutation.
type TxMeta struct {
	Type         string
	Description  string
	TournamentID *int
}

type Service struct {
	userRepo      UserRepo
	txRepo        TransactionRepo
	auditRepo     AuditRepo
	txManager     pg.TXManager
	notifier      notify.Notifier
	depositExpiry time.Duration
}

func New(userRepo UserRepo, txRepo TransactionRepo, auditRepo AuditRepo, txManager pg.TXManager, notifier notify.Notifier, depositExpiry time.Duration) *Service {
	return &Service{
		userRepo:      userRepo,
		txRepo:        txRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		notifier:      notifier,
		depositExpiry: depositExpiry,
	}
}

// Credit adds amount to the wallet and records the paired ledger entry.
// Balance mutation and transaction row commit as one unit.
func (s *Service) Credit(ctx context.Context, userID int, amount int64, meta TxMeta) (*domain.Transaction, error) {
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balanceAfter, err := s.userRepo.Credit(ctx, userID, amount)
		if err != nil {
			return err
		}
		tx, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:       userID,
			Type:         meta.Type,
			Status:       domain.TxSuccess,
			Amount:       amount,
			BalanceAfter: balanceAfter,
			TournamentID: meta.TournamentID,
			Description:  meta.Description,
		})
		return err
	})
	if err != nil {
		zap.L().Error("credit failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// Debit removes amount from the wallet via a single conditional update and
// records the paired ledger entry. Returns ErrInsufficientFunds when the
// balance did not cover the amount at the instant of the write.
func (s *Service) Debit(ctx context.Context, userID int, amount int64, meta TxMeta) (*domain.Transaction, error) {
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balanceAfter, ok, err := s.userRepo.Debit(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientFunds
		}
		tx, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID:       userID,
			Type:         meta.Type,
			Status:       domain.TxSuccess,
			Amount:       amount,
			BalanceAfter: balanceAfter,
			TournamentID: meta.TournamentID,
			Description:  meta.Description,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("debit failed", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return tx, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrNotFound
	}
	return user.WalletBalance, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.txRepo.FindByUserID(ctx, userID)
}

// InitiateDeposit opens a pending deposit with a unique reference code for
// the out-of-band verification channel and a fixed expiry window. No balance
// is touched until an admin resolves it.
func (s *Service) InitiateDeposit(ctx context.Context, userID int, amount int64) (*domain.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.IsBanned {
		return nil, ErrBanned
	}

	expiresAt := time.Now().Add(s.depositExpiry)
	tx, err := s.txRepo.Create(ctx, &domain.Transaction{
		UserID:    userID,
		Type:      domain.TxDeposit,
		Status:    domain.TxPending,
		Amount:    amount,
		Reference: uuid.NewString(),
		ExpiresAt: &expiresAt,
	})
	if err != nil {
		zap.L().Error("can't initiate deposit", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// SubmitUTR attaches the 12-digit bank reference a user claims to have paid
// with. The operator channel is pinged so a human can match it.
func (s *Service) SubmitUTR(ctx context.Context, transactionID int, utr string) error {
	existing, err := s.txRepo.FindByUTR(ctx, utr)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateUTR
	}

	tx, err := s.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrNotFound
	}
	if tx.Status != domain.TxPending {
		return ErrAlreadyProcessed
	}
	if tx.ExpiresAt != nil && time.Now().After(*tx.ExpiresAt) {
		return ErrExpired
	}

	ok, err := s.txRepo.AttachUTR(ctx, transactionID, utr)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyProcessed
	}

	if err := s.txRepo.AddEvent(ctx, &domain.TransactionEvent{
		TransactionID: transactionID,
		Action:        "UTR_SUBMITTED",
		Actor:         fmt.Sprintf("user:%d", tx.UserID),
		Details:       "UTR: " + utr,
	}); err != nil {
		zap.L().Error("can't log UTR event", zap.Error(err))
	}

	s.notifier.NotifyOperator(ctx, fmt.Sprintf("Deposit pending\nAmount: ₹%d\nUTR: %s\nTxID: %d", tx.Amount, utr, transactionID))
	return nil
}

// ResolveDeposit finalizes a pending deposit. Approval credits the wallet and
// snapshots the post-credit balance; both directions audit and notify.
func (s *Service) ResolveDeposit(ctx context.Context, adminID, transactionID int, approve bool, reason, ip string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.Type != domain.TxDeposit {
		return nil, ErrNotFound
	}
	if tx.Status != domain.TxPending {
		return nil, ErrAlreadyProcessed
	}
	if tx.ExpiresAt != nil && time.Now().After(*tx.ExpiresAt) {
		return nil, ErrExpired
	}

	if approve {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			balanceAfter, err := s.userRepo.Credit(ctx, tx.UserID, tx.Amount)
			if err != nil {
				return err
			}
			ok, err := s.txRepo.Resolve(ctx, transactionID, domain.TxSuccess, balanceAfter)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}
			tx.Status = domain.TxSuccess
			tx.BalanceAfter = balanceAfter

			details, _ := json.Marshal(map[string]any{"amount": tx.Amount, "balanceAfter": balanceAfter})
			return s.auditRepo.Append(ctx, &domain.AuditEntry{
				AdminID:    adminID,
				Action:     domain.AuditApproveDeposit,
				TargetType: "Transaction",
				TargetID:   transactionID,
				Details:    string(details),
				IPAddress:  ip,
			})
		})
		if err != nil {
			if !errors.Is(err, ErrAlreadyProcessed) {
				zap.L().Error("deposit approval failed", zap.Int("transactionID", transactionID), zap.Error(err))
			}
			return nil, err
		}
		s.notifier.Notify(ctx, tx.UserID, "Deposit approved", fmt.Sprintf("₹%d has been credited to your wallet.", tx.Amount))
	} else {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			ok, err := s.txRepo.Resolve(ctx, transactionID, domain.TxFailed, tx.BalanceAfter)
			if err != nil {
				return err
			}
			if !ok {
				return ErrAlreadyProcessed
			}
			tx.Status = domain.TxFailed

			details, _ := json.Marshal(map[string]any{"reason": reason})
			return s.auditRepo.Append(ctx, &domain.AuditEntry{
				AdminID:    adminID,
				Action:     domain.AuditRejectDeposit,
				TargetType: "Transaction",
				TargetID:   transactionID,
				Details:    string(details),
				IPAddress:  ip,
			})
		})
		if err != nil {
			return nil, err
		}
		s.notifier.Notify(ctx, tx.UserID, "Deposit rejected", reason)
	}

	if err := s.txRepo.AddEvent(ctx, &domain.TransactionEvent{
		TransactionID: transactionID,
		Action:        "RESOLVED_" + tx.Status,
		Actor:         fmt.Sprintf("admin:%d", adminID),
		Details:       reason,
	}); err != nil {
		zap.L().Error("can't log resolve event", zap.Error(err))
	}
	return tx, nil
}

func (s *Service) GetPendingDeposits(ctx context.Context) ([]domain.Transaction, error) {
	return s.txRepo.FindPendingDeposits(ctx)
}

// ExpireDeposits fails pending deposits past their window. Called from the
// periodic sweep.
func (s *Service) ExpireDeposits(ctx context.Context) error {
	ids, err := s.txRepo.ExpirePending(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.txRepo.AddEvent(ctx, &domain.TransactionEvent{
			TransactionID: id,
			Action:        "EXPIRED",
			Actor:         "sweeper",
		}); err != nil {
			zap.L().Error("can't log expiry event", zap.Int("transactionID", id), zap.Error(err))
		}
	}
	if len(ids) > 0 {
		zap.L().Info("expired stale deposits", zap.Int("count", len(ids)))
	}
	return nil
}
