package adminservice

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
)

var ErrNotFound = errors.New("user not found")

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetBan(ctx context.Context, userID int, banned bool, reason string) error
	CountUsers(ctx context.Context) (int, error)
}

type TournamentRepo interface {
	CountActive(ctx context.Context) (int, error)
}

type TransactionRepo interface {
	CountPending(ctx context.Context, txType string) (int, int64, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WithdrawalRepo interface {
	CountPending(ctx context.Context) (int, int64, error)
}

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	SumCommission(ctx context.Context) (int64, error)
}

type Service struct {
	userRepo       UserRepo
	tournamentRepo TournamentRepo
	txRepo         TransactionRepo
	withdrawalRepo WithdrawalRepo
	auditRepo      AuditRepo
}

func New(userRepo UserRepo, tournamentRepo TournamentRepo, txRepo TransactionRepo, withdrawalRepo WithdrawalRepo, auditRepo AuditRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		tournamentRepo: tournamentRepo,
		txRepo:         txRepo,
		withdrawalRepo: withdrawalRepo,
		auditRepo:      auditRepo,
	}
}

// Stats is the admin dashboard snapshot.
type Stats struct {
	TotalUsers         int
	ActiveTournaments  int
	PendingDeposits    int
	PendingWithdrawals int
	Revenue            int64
}

func (s *Service) Dashboard(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.tournamentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	deposits, _, err := s.txRepo.CountPending(ctx, domain.TxDeposit)
	if err != nil {
		return nil, err
	}
	withdrawals, _, err := s.withdrawalRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.auditRepo.SumCommission(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:         users,
		ActiveTournaments:  active,
		PendingDeposits:    deposits,
		PendingWithdrawals: withdrawals,
		Revenue:            revenue,
	}, nil
}

// SetBan flips the soft-ban flag. Accounts are never deleted.
func (s *Service) SetBan(ctx context.Context, adminID, userID int, banned bool, reason, ip string) error {
	err := s.userRepo.SetBan(ctx, userID, banned, reason)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	action := domain.AuditBanUser
	if !banned {
		action = domain.AuditUnbanUser
	}
	details, _ := json.Marshal(map[string]any{"reason": reason})
	if err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		AdminID:    adminID,
		Action:     action,
		TargetType: "User",
		TargetID:   userID,
		Details:    string(details),
		IPAddress:  ip,
	}); err != nil {
		zap.L().Error("audit log failure", zap.String("action", action), zap.Error(err))
	}
	return nil
}

// GetUser returns an account together with its full ledger history.
func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, []domain.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrNotFound
	}

	transactions, err := s.txRepo.FindByUserID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return user, transactions, nil
}
