package voteservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
)

var (
	ErrNotFound  = errors.New("tournament not found")
	ErrNotVoting = errors.New("tournament is not in a voting phase")
	ErrNotJoined = errors.New("only joined players may vote")
	ErrPollOver  = errors.New("voting deadline has passed")
)

type TournamentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Tournament, error)
	IsJoined(ctx context.Context, tournamentID, userID int) (bool, error)
	UpsertVote(ctx context.Context, vote *domain.Vote) error
	CountVotes(ctx context.Context, tournamentID int) (yes, no int, err error)
	SetVotingDeadline(ctx context.Context, id int, deadline time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int, to string, from ...string) (bool, error)
}

// Refunder reverses entry fees after a cancelled poll. Implemented by the
// tournament service.
type Refunder interface {
	RefundEntryFees(ctx context.Context, tournamentID int) error
}

type Service struct {
	repo     TournamentRepo
	refunder Refunder
	window   time.Duration
}

func New(repo TournamentRepo, refunder Refunder, window time.Duration) *Service {
	return &Service{
		repo:     repo,
		refunder: refunder,
		window:   window,
	}
}

// Cast records a joined player's vote. Voting again before the deadline
// overwrites the earlier choice.
func (s *Service) Cast(ctx context.Context, userID, tournamentID int, choice string) error {
	t, err := s.repo.FindByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}
	if t.Status != domain.TournamentVoting {
		return ErrNotVoting
	}
	if t.VotingEndsAt != nil && time.Now().After(*t.VotingEndsAt) {
		return ErrPollOver
	}

	joined, err := s.repo.IsJoined(ctx, tournamentID, userID)
	if err != nil {
		return err
	}
	if !joined {
		return ErrNotJoined
	}

	return s.repo.UpsertVote(ctx, &domain.Vote{
		TournamentID: tournamentID,
		UserID:       userID,
		Choice:       choice,
	})
}

// OpenPoll freezes joins and starts the countdown. The conditional update
// no-ops when the tournament has already moved on.
func (s *Service) OpenPoll(ctx context.Context, tournamentID int) error {
	ok, err := s.repo.SetVotingDeadline(ctx, tournamentID, time.Now().Add(s.window))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	zap.L().Info("voting opened", zap.Int("tournamentID", tournamentID))
	return nil
}

// ResolvePoll decides an expired poll: a strict YES majority of votes cast
// confirms the match, anything else cancels with full refunds. The status
// compare-and-set re-checks the tournament is still VOTING so a racing admin
// cancellation wins cleanly.
func (s *Service) ResolvePoll(ctx context.Context, tournamentID int) error {
	yes, no, err := s.repo.CountVotes(ctx, tournamentID)
	if err != nil {
		return err
	}

	if yes > no {
		ok, err := s.repo.UpdateStatus(ctx, tournamentID, domain.TournamentConfirmed, domain.TournamentVoting)
		if err != nil {
			return err
		}
		if ok {
			zap.L().Info("poll resolved to proceed",
				zap.Int("tournamentID", tournamentID), zap.Int("yes", yes), zap.Int("no", no))
		}
		return nil
	}

	ok, err := s.repo.UpdateStatus(ctx, tournamentID, domain.TournamentCancelled, domain.TournamentVoting)
	if err != nil {
		return err
	}
	if !ok {
		// Already cancelled or otherwise moved on; refunds belong to
		// whoever made that transition.
		return nil
	}
	zap.L().Info("poll resolved to cancel",
		zap.Int("tournamentID", tournamentID), zap.Int("yes", yes), zap.Int("no", no))
	return s.refunder.RefundEntryFees(ctx, tournamentID)
}
