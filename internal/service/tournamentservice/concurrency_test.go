package tournamentservice

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	tournamentrepo "github.com/battlearena/battlearena/internal/repo/tournament-repo"
	"github.com/battlearena/battlearena/internal/service/walletservice"
)

// raceStore mimics the database guards joins rely on: the conditional
// balance debit, the seat-count capped roster insert, and the unique
// (tournament, user) pair. raceTxManager serializes transactions the way the
// row lock taken by FindByIDForUpdate does, and unwinds the journal on error
// the way a rollback would.
type raceStore struct {
	mu          sync.Mutex
	balances    map[int]int64
	tournaments map[int]*domain.Tournament
	rosters     map[int]map[int]bool
	journal     []func()
}

func newRaceStore() *raceStore {
	return &raceStore{
		balances:    map[int]int64{},
		tournaments: map[int]*domain.Tournament{},
		rosters:     map[int]map[int]bool{},
	}
}

type raceTxManager struct {
	store *raceStore
}

func (m *raceTxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.store.journal = nil
	err := fn(ctx)
	if err != nil {
		for i := len(m.store.journal) - 1; i >= 0; i-- {
			m.store.journal[i]()
		}
	}
	m.store.journal = nil
	return err
}

type raceLedger struct {
	store *raceStore
}

func (l *raceLedger) Debit(_ context.Context, userID int, amount int64, _ walletservice.TxMeta) (*domain.Transaction, error) {
	if l.store.balances[userID] < amount {
		return nil, walletservice.ErrInsufficientFunds
	}
	l.store.balances[userID] -= amount
	l.store.journal = append(l.store.journal, func() { l.store.balances[userID] += amount })
	return &domain.Transaction{UserID: userID, Amount: amount, BalanceAfter: l.store.balances[userID]}, nil
}

func (l *raceLedger) Credit(_ context.Context, userID int, amount int64, _ walletservice.TxMeta) (*domain.Transaction, error) {
	l.store.balances[userID] += amount
	l.store.journal = append(l.store.journal, func() { l.store.balances[userID] -= amount })
	return &domain.Transaction{UserID: userID, Amount: amount, BalanceAfter: l.store.balances[userID]}, nil
}

type raceTournamentRepo struct {
	store *raceStore
}

func (r *raceTournamentRepo) FindByIDForUpdate(_ context.Context, id int) (*domain.Tournament, error) {
	return r.store.tournaments[id], nil
}

func (r *raceTournamentRepo) AddPlayer(_ context.Context, player *domain.Player, maxPlayers int) (*domain.Player, error) {
	roster := r.store.rosters[player.TournamentID]
	if roster == nil {
		roster = map[int]bool{}
		r.store.rosters[player.TournamentID] = roster
	}
	if roster[player.UserID] {
		return nil, tournamentrepo.ErrDuplicatePlayer
	}
	if len(roster) >= maxPlayers {
		return nil, nil
	}
	roster[player.UserID] = true
	r.store.journal = append(r.store.journal, func() { delete(roster, player.UserID) })
	player.Slot = len(roster)
	return player, nil
}

func (r *raceTournamentRepo) Create(context.Context, *domain.Tournament) (*domain.Tournament, error) {
	return nil, nil
}
func (r *raceTournamentRepo) FindByID(_ context.Context, id int) (*domain.Tournament, error) {
	return r.store.tournaments[id], nil
}
func (r *raceTournamentRepo) List(context.Context, []string) ([]domain.Tournament, error) {
	return nil, nil
}
func (r *raceTournamentRepo) UpdateRoom(context.Context, int, string, string) error { return nil }
func (r *raceTournamentRepo) UpdateStatus(context.Context, int, string, ...string) (bool, error) {
	return true, nil
}
func (r *raceTournamentRepo) ListPlayers(context.Context, int) ([]domain.Player, error) {
	return nil, nil
}
func (r *raceTournamentRepo) CountPlayers(_ context.Context, tournamentID int) (int, error) {
	return len(r.store.rosters[tournamentID]), nil
}
func (r *raceTournamentRepo) IsJoined(_ context.Context, tournamentID, userID int) (bool, error) {
	return r.store.rosters[tournamentID][userID], nil
}
func (r *raceTournamentRepo) SaveWinner(context.Context, *domain.Winner) error { return nil }
func (r *raceTournamentRepo) ListWinners(context.Context, int) ([]domain.Winner, error) {
	return nil, nil
}
func (r *raceTournamentRepo) Delete(context.Context, int) (bool, error) { return true, nil }

type raceUserRepo struct {
	users map[int]*domain.User
}

func (r *raceUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	return r.users[id], nil
}

func newRaceService(store *raceStore, users map[int]*domain.User) *Service {
	return New(
		&raceTournamentRepo{store: store},
		&raceUserRepo{users: users},
		&raceLedger{store: store},
		&raceAuditRepo{},
		&raceTxManager{store: store},
		&notify.LogNotifier{},
	)
}

type raceAuditRepo struct{}

func (r *raceAuditRepo) Append(context.Context, *domain.AuditEntry) error { return nil }

func TestJoinRace(t *testing.T) {
	t.Run("roster never exceeds the cap under racing joins", func(t *testing.T) {
		const (
			players  = 32
			seats    = 8
			entryFee = int64(100)
		)

		store := newRaceStore()
		store.tournaments[1] = &domain.Tournament{
			ID: 1, Title: "Friday Clash", Status: domain.TournamentOpen,
			EntryFee: entryFee, MaxPlayers: seats, MinPlayers: 2,
		}

		users := map[int]*domain.User{}
		for id := 1; id <= players; id++ {
			users[id] = &domain.User{ID: id, GameName: "player"}
			store.balances[id] = entryFee
		}

		service := newRaceService(store, users)

		var wg sync.WaitGroup
		errs := make([]error, players+1)
		for id := 1; id <= players; id++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				_, errs[id] = service.Join(context.Background(), id, 1)
			}(id)
		}
		wg.Wait()

		joined := 0
		for id := 1; id <= players; id++ {
			if errs[id] == nil {
				joined++
				assert.Equal(t, int64(0), store.balances[id], "joined player %d must be debited once", id)
			} else {
				assert.ErrorIs(t, errs[id], ErrFull)
				assert.Equal(t, entryFee, store.balances[id], "rejected player %d must keep the entry fee", id)
			}
			assert.GreaterOrEqual(t, store.balances[id], int64(0))
		}
		assert.Equal(t, seats, joined)
		assert.Len(t, store.rosters[1], seats)
	})

	t.Run("balance stays non-negative when one wallet races two joins", func(t *testing.T) {
		const entryFee = int64(100)

		store := newRaceStore()
		for _, id := range []int{1, 2} {
			store.tournaments[id] = &domain.Tournament{
				ID: id, Title: "Bracket", Status: domain.TournamentOpen,
				EntryFee: entryFee, MaxPlayers: 8, MinPlayers: 2,
			}
		}
		users := map[int]*domain.User{7: {ID: 7, GameName: "player7"}}
		store.balances[7] = 150

		service := newRaceService(store, users)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, tournamentID := range []int{1, 2} {
			wg.Add(1)
			go func(i, tournamentID int) {
				defer wg.Done()
				_, errs[i] = service.Join(context.Background(), 7, tournamentID)
			}(i, tournamentID)
		}
		wg.Wait()

		var joined, rejected int
		for _, err := range errs {
			if err == nil {
				joined++
			} else {
				assert.ErrorIs(t, err, walletservice.ErrInsufficientFunds)
				rejected++
			}
		}
		assert.Equal(t, 1, joined)
		assert.Equal(t, 1, rejected)
		assert.Equal(t, int64(50), store.balances[7])
	})

	t.Run("duplicate joins collapse to one seat", func(t *testing.T) {
		const entryFee = int64(100)

		store := newRaceStore()
		store.tournaments[1] = &domain.Tournament{
			ID: 1, Title: "Rematch", Status: domain.TournamentOpen,
			EntryFee: entryFee, MaxPlayers: 8, MinPlayers: 2,
		}
		users := map[int]*domain.User{7: {ID: 7, GameName: "player7"}}
		store.balances[7] = 500

		service := newRaceService(store, users)

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = service.Join(context.Background(), 7, 1)
			}(i)
		}
		wg.Wait()

		var joined int
		for _, err := range errs {
			if err == nil {
				joined++
			} else {
				assert.ErrorIs(t, err, ErrAlreadyJoined)
			}
		}
		assert.Equal(t, 1, joined)
		assert.Len(t, store.rosters[1], 1)
		assert.Equal(t, int64(400), store.balances[7])
	})
}
