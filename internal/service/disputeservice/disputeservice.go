package disputeservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrNotJoined          = errors.New("only joined players may dispute a match")
	ErrNotFound           = errors.New("dispute not found")
	ErrAlreadyResolved    = errors.New("dispute already resolved")
)

type DisputeRepo interface {
	Create(ctx context.Context, d *domain.Dispute) (*domain.Dispute, error)
	FindByID(ctx context.Context, id int) (*domain.Dispute, error)
	Resolve(ctx context.Context, id int, status string, adminID int, response string) (bool, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Dispute, error)
	FindPending(ctx context.Context) ([]domain.Dispute, error)
}

type TournamentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Tournament, error)
	IsJoined(ctx context.Context, tournamentID, userID int) (bool, error)
}

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

type Service struct {
	repo           DisputeRepo
	tournamentRepo TournamentRepo
	auditRepo      AuditRepo
}

func New(repo DisputeRepo, tournamentRepo TournamentRepo, auditRepo AuditRepo) *Service {
	return &Service{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		auditRepo:      auditRepo,
	}
}

// Submit files a claim against a match the player took part in. The optional
// transaction reference ties the claim to a specific payout.
func (s *Service) Submit(ctx context.Context, userID, tournamentID int, transactionID *int, claim string) (*domain.Dispute, error) {
	t, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTournamentNotFound
	}

	joined, err := s.tournamentRepo.IsJoined(ctx, tournamentID, userID)
	if err != nil {
		return nil, err
	}
	if !joined {
		return nil, ErrNotJoined
	}

	dispute, err := s.repo.Create(ctx, &domain.Dispute{
		UserID:        userID,
		TournamentID:  tournamentID,
		TransactionID: transactionID,
		ClaimText:     claim,
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("dispute submitted",
		zap.Int("disputeID", dispute.ID),
		zap.Int("userID", userID),
		zap.Int("tournamentID", tournamentID))
	return dispute, nil
}

// Resolve closes a pending dispute with an accept or reject decision and the
// admin's written response.
func (s *Service) Resolve(ctx context.Context, adminID, id int, accept bool, response, ip string) (*domain.Dispute, error) {
	dispute, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dispute == nil {
		return nil, ErrNotFound
	}

	status := domain.DisputeResolved
	if !accept {
		status = domain.DisputeRejected
	}

	ok, err := s.repo.Resolve(ctx, id, status, adminID, response)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyResolved
	}

	details, _ := json.Marshal(map[string]any{"status": status, "response": response})
	if err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		AdminID:    adminID,
		Action:     domain.AuditResolveDispute,
		TargetType: "Dispute",
		TargetID:   id,
		Details:    string(details),
		IPAddress:  ip,
	}); err != nil {
		zap.L().Error("audit log failure", zap.String("action", domain.AuditResolveDispute), zap.Error(err))
	}

	now := time.Now()
	dispute.Status = status
	dispute.AdminResponse = response
	dispute.ResolvedBy = &adminID
	dispute.ResolvedAt = &now
	return dispute, nil
}

func (s *Service) GetByUser(ctx context.Context, userID int) ([]domain.Dispute, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *Service) GetPending(ctx context.Context) ([]domain.Dispute, error) {
	return s.repo.FindPending(ctx)
}
