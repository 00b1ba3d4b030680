package voteservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlearena/battlearena/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockTournamentRepo, *MockRefunder) {
	ctrl := gomock.NewController(t)
	repo := NewMockTournamentRepo(ctrl)
	refunder := NewMockRefunder(ctrl)
	service := New(repo, refunder, 30*time.Minute)
	defer ctrl.Finish()
	return service, repo, refunder
}

func TestCast(t *testing.T) {
	service, repo, _ := NewMock(t)

	future := time.Now().Add(10 * time.Minute)
	past := time.Now().Add(-time.Minute)

	t.Run("Records a vote from a joined player", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Tournament{
			ID: 1, Status: domain.TournamentVoting, VotingEndsAt: &future,
		}, nil)
		repo.EXPECT().IsJoined(gomock.Any(), 1, 7).Return(true, nil)
		repo.EXPECT().UpsertVote(gomock.Any(), &domain.Vote{
			TournamentID: 1, UserID: 7, Choice: domain.VoteYes,
		}).Return(nil)

		err := service.Cast(context.Background(), 7, 1, domain.VoteYes)
		assert.NoError(t, err)
	})

	t.Run("Rejects a non-roster voter", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Tournament{
			ID: 1, Status: domain.TournamentVoting, VotingEndsAt: &future,
		}, nil)
		repo.EXPECT().IsJoined(gomock.Any(), 1, 8).Return(false, nil)

		err := service.Cast(context.Background(), 8, 1, domain.VoteNo)
		assert.ErrorIs(t, err, ErrNotJoined)
	})

	t.Run("Rejects outside the voting phase", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Tournament{
			ID: 1, Status: domain.TournamentOpen,
		}, nil)

		err := service.Cast(context.Background(), 7, 1, domain.VoteYes)
		assert.ErrorIs(t, err, ErrNotVoting)
	})

	t.Run("Rejects after the deadline", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Tournament{
			ID: 1, Status: domain.TournamentVoting, VotingEndsAt: &past,
		}, nil)

		err := service.Cast(context.Background(), 7, 1, domain.VoteYes)
		assert.ErrorIs(t, err, ErrPollOver)
	})

	t.Run("Unknown tournament", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)

		err := service.Cast(context.Background(), 7, 99, domain.VoteYes)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOpenPoll(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Sets the deadline one window out", func(t *testing.T) {
		repo.EXPECT().SetVotingDeadline(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(ctx context.Context, id int, deadline time.Time) (bool, error) {
				assert.WithinDuration(t, time.Now().Add(30*time.Minute), deadline, 5*time.Second)
				return true, nil
			})

		err := service.OpenPoll(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("No-ops when the tournament has moved on", func(t *testing.T) {
		repo.EXPECT().SetVotingDeadline(gomock.Any(), 1, gomock.Any()).Return(false, nil)

		err := service.OpenPoll(context.Background(), 1)
		assert.NoError(t, err)
	})
}

func TestResolvePoll(t *testing.T) {
	service, repo, refunder := NewMock(t)

	t.Run("YES majority confirms", func(t *testing.T) {
		repo.EXPECT().CountVotes(gomock.Any(), 1).Return(3, 1, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.TournamentConfirmed, domain.TournamentVoting).Return(true, nil)

		err := service.ResolvePoll(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Tie cancels with refunds", func(t *testing.T) {
		repo.EXPECT().CountVotes(gomock.Any(), 1).Return(2, 2, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.TournamentCancelled, domain.TournamentVoting).Return(true, nil)
		refunder.EXPECT().RefundEntryFees(gomock.Any(), 1).Return(nil)

		err := service.ResolvePoll(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("NO majority cancels with refunds", func(t *testing.T) {
		repo.EXPECT().CountVotes(gomock.Any(), 1).Return(1, 3, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.TournamentCancelled, domain.TournamentVoting).Return(true, nil)
		refunder.EXPECT().RefundEntryFees(gomock.Any(), 1).Return(nil)

		err := service.ResolvePoll(context.Background(), 1)
		assert.NoError(t, err)
	})

	t.Run("Skips refunds when someone else already cancelled", func(t *testing.T) {
		repo.EXPECT().CountVotes(gomock.Any(), 1).Return(0, 0, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.TournamentCancelled, domain.TournamentVoting).Return(false, nil)

		err := service.ResolvePoll(context.Background(), 1)
		assert.NoError(t, err)
	})
}
