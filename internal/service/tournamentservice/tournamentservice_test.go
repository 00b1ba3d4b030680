package tournamentservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
	tournamentrepo "github.com/battlearena/battlearena/internal/repo/tournament-repo"
	"github.com/battlearena/battlearena/internal/service/walletservice"
)

func NewMock(t *testing.T) (*Service, *MockTournamentRepo, *MockUserRepo, *MockLedger, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockTournamentRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(repo, userRepo, ledger, auditRepo, txManager, &notify.LogNotifier{})
	defer ctrl.Finish()
	return service, repo, userRepo, ledger, auditRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestJoin(t *testing.T) {
	service, repo, userRepo, ledger, _, txManager := NewMock(t)
	passthroughTx(txManager)

	open := &domain.Tournament{ID: 3, Title: "Friday Clash", EntryFee: 100, MaxPlayers: 48, Status: domain.TournamentOpen}

	t.Run("Debits the entry fee and takes a slot", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, GameName: "SniperX"}, nil)
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(open, nil)
		ledger.EXPECT().Debit(gomock.Any(), 1, int64(100), gomock.Any()).Return(&domain.Transaction{}, nil)
		repo.EXPECT().AddPlayer(gomock.Any(), gomock.Any(), 48).DoAndReturn(
			func(ctx context.Context, p *domain.Player, maxPlayers int) (*domain.Player, error) {
				p.ID = 11
				p.Slot = 1
				return p, nil
			})

		player, err := service.Join(context.Background(), 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, 1, player.Slot)
		assert.Equal(t, "SniperX", player.GameName)
	})

	t.Run("Rejects joining a non-open tournament", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(
			&domain.Tournament{ID: 3, Status: domain.TournamentLive}, nil)

		_, err := service.Join(context.Background(), 1, 3)
		assert.ErrorIs(t, err, ErrNotOpen)
	})

	t.Run("Insufficient funds rolls the join back", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(open, nil)
		ledger.EXPECT().Debit(gomock.Any(), 1, int64(100), gomock.Any()).Return(nil, walletservice.ErrInsufficientFunds)

		_, err := service.Join(context.Background(), 1, 3)
		assert.ErrorIs(t, err, walletservice.ErrInsufficientFunds)
	})

	t.Run("Full roster", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(open, nil)
		ledger.EXPECT().Debit(gomock.Any(), 1, int64(100), gomock.Any()).Return(&domain.Transaction{}, nil)
		repo.EXPECT().AddPlayer(gomock.Any(), gomock.Any(), 48).Return(nil, nil)

		_, err := service.Join(context.Background(), 1, 3)
		assert.ErrorIs(t, err, ErrFull)
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(open, nil)
		ledger.EXPECT().Debit(gomock.Any(), 1, int64(100), gomock.Any()).Return(&domain.Transaction{}, nil)
		repo.EXPECT().AddPlayer(gomock.Any(), gomock.Any(), 48).Return(nil, tournamentrepo.ErrDuplicatePlayer)

		_, err := service.Join(context.Background(), 1, 3)
		assert.ErrorIs(t, err, ErrAlreadyJoined)
	})

	t.Run("Banned accounts cannot join", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{ID: 2, IsBanned: true}, nil)

		_, err := service.Join(context.Background(), 2, 3)
		assert.ErrorIs(t, err, ErrBanned)
	})
}

func TestSubmitResults(t *testing.T) {
	service, repo, _, ledger, auditRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	// 10 players at ₹100 with a 20% commission: pot 1000, net pool 800,
	// 50/30/20 split pays 400/240/160 and the house keeps 200.
	tournament := &domain.Tournament{
		ID: 7, Title: "Friday Clash", EntryFee: 100, CommissionRate: 20,
		PrizeSplit: []int{50, 30, 20}, Status: domain.TournamentLive,
	}
	players := make([]domain.Player, 10)
	for i := range players {
		players[i] = domain.Player{UserID: i + 1}
	}

	t.Run("Settles with commission held back", func(t *testing.T) {
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).Return(tournament, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.TournamentCompleted,
			domain.TournamentConfirmed, domain.TournamentLive).Return(true, nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 7).Return(players, nil)
		repo.EXPECT().SaveWinner(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		ledger.EXPECT().Credit(gomock.Any(), 2, int64(400), gomock.Any()).Return(&domain.Transaction{}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 5, int64(240), gomock.Any()).Return(&domain.Transaction{}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 9, int64(160), gomock.Any()).Return(&domain.Transaction{}, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, domain.AuditCommissionLog, entry.Action)
				assert.Contains(t, entry.Details, `"houseEarnings":200`)
				return nil
			})
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, domain.AuditSubmitResults, entry.Action)
				return nil
			})

		winners, err := service.SubmitResults(context.Background(), 9, 7, []WinnerInput{
			{UserID: 5, Rank: 2},
			{UserID: 2, Rank: 1},
			{UserID: 9, Rank: 3},
		}, "10.0.0.1")
		assert.NoError(t, err)
		assert.Len(t, winners, 3)
		assert.Equal(t, int64(400), winners[0].Prize)
		assert.Equal(t, int64(240), winners[1].Prize)
		assert.Equal(t, int64(160), winners[2].Prize)
	})

	t.Run("Rank beyond the split table pays nothing", func(t *testing.T) {
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).Return(tournament, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.TournamentCompleted,
			domain.TournamentConfirmed, domain.TournamentLive).Return(true, nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 7).Return(players, nil)
		repo.EXPECT().SaveWinner(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		ledger.EXPECT().Credit(gomock.Any(), 2, int64(400), gomock.Any()).Return(&domain.Transaction{}, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		winners, err := service.SubmitResults(context.Background(), 9, 7, []WinnerInput{
			{UserID: 2, Rank: 1},
			{UserID: 4, Rank: 4},
		}, "10.0.0.1")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), winners[1].Prize)
	})

	t.Run("Re-submission is rejected before any payout", func(t *testing.T) {
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).Return(
			&domain.Tournament{ID: 7, Status: domain.TournamentCompleted}, nil)

		_, err := service.SubmitResults(context.Background(), 9, 7, []WinnerInput{{UserID: 2, Rank: 1}}, "10.0.0.1")
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})

	t.Run("Settling from OPEN is rejected", func(t *testing.T) {
		repo.EXPECT().FindByIDForUpdate(gomock.Any(), 7).Return(
			&domain.Tournament{ID: 7, Status: domain.TournamentOpen}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 7, domain.TournamentCompleted,
			domain.TournamentConfirmed, domain.TournamentLive).Return(false, nil)

		_, err := service.SubmitResults(context.Background(), 9, 7, []WinnerInput{{UserID: 2, Rank: 1}}, "10.0.0.1")
		assert.ErrorIs(t, err, ErrNotSettleable)
	})

	t.Run("Empty winners list", func(t *testing.T) {
		_, err := service.SubmitResults(context.Background(), 9, 7, nil, "10.0.0.1")
		assert.ErrorIs(t, err, ErrEmptyWinners)
	})
}

func TestCancel(t *testing.T) {
	service, repo, _, ledger, auditRepo, _ := NewMock(t)

	tournament := &domain.Tournament{ID: 3, Title: "Friday Clash", EntryFee: 100, Status: domain.TournamentOpen}

	t.Run("Cancels and refunds every player", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(tournament, nil).Times(2)
		repo.EXPECT().ListWinners(gomock.Any(), 3).Return(nil, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.TournamentCancelled,
			domain.TournamentCreated, domain.TournamentOpen, domain.TournamentVoting,
			domain.TournamentConfirmed, domain.TournamentLive).Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 3).Return([]domain.Player{{UserID: 1}, {UserID: 2}}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 1, int64(100), gomock.Any()).Return(&domain.Transaction{}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 2, int64(100), gomock.Any()).Return(&domain.Transaction{}, nil)

		err := service.Cancel(context.Background(), 9, 3, "10.0.0.1")
		assert.NoError(t, err)
	})

	t.Run("Rejects cancelling a settled tournament", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(tournament, nil)
		repo.EXPECT().ListWinners(gomock.Any(), 3).Return([]domain.Winner{{UserID: 1, Rank: 1}}, nil)

		err := service.Cancel(context.Background(), 9, 3, "10.0.0.1")
		assert.ErrorIs(t, err, ErrHasWinners)
	})

	t.Run("Terminal states stay terminal", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(tournament, nil)
		repo.EXPECT().ListWinners(gomock.Any(), 3).Return(nil, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.TournamentCancelled,
			domain.TournamentCreated, domain.TournamentOpen, domain.TournamentVoting,
			domain.TournamentConfirmed, domain.TournamentLive).Return(false, nil)

		err := service.Cancel(context.Background(), 9, 3, "10.0.0.1")
		assert.ErrorIs(t, err, ErrTerminal)
	})
}

func TestRefundEntryFees(t *testing.T) {
	service, repo, _, ledger, _, _ := NewMock(t)

	tournament := &domain.Tournament{ID: 3, Title: "Friday Clash", EntryFee: 100}

	t.Run("One failing refund does not abort the rest", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(tournament, nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 3).Return([]domain.Player{{UserID: 1}, {UserID: 2}}, nil)
		ledger.EXPECT().Credit(gomock.Any(), 1, int64(100), gomock.Any()).
			Return(nil, assert.AnError).Times(3)
		ledger.EXPECT().Credit(gomock.Any(), 2, int64(100), gomock.Any()).Return(&domain.Transaction{}, nil)

		err := service.RefundEntryFees(context.Background(), 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 refunds failed")
	})
}

func TestGet(t *testing.T) {
	service, repo, _, _, _, _ := NewMock(t)

	t.Run("Room hidden outside the reveal window", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Tournament{
			ID: 3, Status: domain.TournamentConfirmed, MatchTime: time.Now().Add(2 * time.Hour),
			RoomID: "53281", RoomPassword: "br2024",
		}, nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 3).Return([]domain.Player{{UserID: 1}}, nil)
		repo.EXPECT().ListWinners(gomock.Any(), 3).Return(nil, nil)

		view, err := service.Get(context.Background(), 3, 1)
		assert.NoError(t, err)
		assert.False(t, view.ShowRoom)
		assert.Empty(t, view.Tournament.RoomID)
	})

	t.Run("Room shown to a joined player near match time", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Tournament{
			ID: 3, Status: domain.TournamentConfirmed, MatchTime: time.Now().Add(10 * time.Minute),
			RoomID: "53281", RoomPassword: "br2024",
		}, nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 3).Return([]domain.Player{{UserID: 1}}, nil)
		repo.EXPECT().ListWinners(gomock.Any(), 3).Return(nil, nil)

		view, err := service.Get(context.Background(), 3, 1)
		assert.NoError(t, err)
		assert.True(t, view.ShowRoom)
		assert.Equal(t, "53281", view.Tournament.RoomID)
	})

	t.Run("Room hidden from outsiders even in the window", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Tournament{
			ID: 3, Status: domain.TournamentLive, MatchTime: time.Now().Add(5 * time.Minute),
			RoomID: "53281", RoomPassword: "br2024",
		}, nil)
		repo.EXPECT().ListPlayers(gomock.Any(), 3).Return([]domain.Player{{UserID: 1}}, nil)
		repo.EXPECT().ListWinners(gomock.Any(), 3).Return(nil, nil)

		view, err := service.Get(context.Background(), 3, 2)
		assert.NoError(t, err)
		assert.False(t, view.ShowRoom)
		assert.Empty(t, view.Tournament.RoomPassword)
	})
}

func TestTransitions(t *testing.T) {
	service, repo, _, _, auditRepo, _ := NewMock(t)

	t.Run("Open moves CREATED to OPEN", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.TournamentOpen, domain.TournamentCreated).Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, service.Open(context.Background(), 9, 3, "10.0.0.1"))
	})

	t.Run("Start rejects a non-confirmed tournament", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.TournamentLive, domain.TournamentConfirmed).Return(false, nil)

		assert.ErrorIs(t, service.Start(context.Background(), 9, 3, "10.0.0.1"), ErrInvalidMove)
	})

	t.Run("Confirm is a no-op when the status already moved", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), 3, domain.TournamentConfirmed, domain.TournamentOpen).Return(false, nil)

		assert.NoError(t, service.Confirm(context.Background(), 3))
	})
}

func TestDelete(t *testing.T) {
	service, repo, _, _, auditRepo, _ := NewMock(t)

	t.Run("Deletes an empty tournament", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Tournament{ID: 3, Title: "Friday Clash"}, nil)
		repo.EXPECT().Delete(gomock.Any(), 3).Return(true, nil)
		auditRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, service.Delete(context.Background(), 9, 3, "10.0.0.1"))
	})

	t.Run("Rejects deleting a tournament with players", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Tournament{ID: 3}, nil)
		repo.EXPECT().Delete(gomock.Any(), 3).Return(false, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), 9, 3, "10.0.0.1"), ErrRosterNotEmpty)
	})
}
