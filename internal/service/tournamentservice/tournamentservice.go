package tournamentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
	tournamentrepo "github.com/battlearena/battlearena/internal/repo/tournament-repo"
	"github.com/battlearena/battlearena/internal/service/walletservice"
)

var (
	ErrNotFound       = errors.New("tournament not found")
	ErrFull           = errors.New("tournament is full")
	ErrAlreadyJoined  = errors.New("already registered")
	ErrNotOpen        = errors.New("tournament is not open for joining")
	ErrAlreadySettled = errors.New("tournament already settled")
	ErrNotSettleable  = errors.New("tournament cannot be settled in its current state")
	ErrEmptyWinners   = errors.New("winners list cannot be empty")
	ErrHasWinners     = errors.New("tournament with recorded winners cannot be cancelled")
	ErrRosterNotEmpty = errors.New("tournament with registered players cannot be deleted, cancel it instead")
	ErrTerminal       = errors.New("tournament is in a terminal state")
	ErrBanned         = errors.New("account is banned")
	ErrInvalidMove    = errors.New("invalid status transition")
)

// roomRevealWindow is how close to match time room credentials become
// visible to joined players.
const roomRevealWindow = 15 * time.Minute

const refundAttempts = 3

type TournamentRepo interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	FindByID(ctx context.Context, id int) (*domain.Tournament, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Tournament, error)
	List(ctx context.Context, statuses []string) ([]domain.Tournament, error)
	UpdateRoom(ctx context.Context, id int, roomID, roomPassword string) error
	UpdateStatus(ctx context.Context, id int, to string, from ...string) (bool, error)
	AddPlayer(ctx context.Context, player *domain.Player, maxPlayers int) (*domain.Player, error)
	ListPlayers(ctx context.Context, tournamentID int) ([]domain.Player, error)
	CountPlayers(ctx context.Context, tournamentID int) (int, error)
	IsJoined(ctx context.Context, tournamentID, userID int) (bool, error)
	SaveWinner(ctx context.Context, w *domain.Winner) error
	ListWinners(ctx context.Context, tournamentID int) ([]domain.Winner, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Ledger is the money-movement surface of the wallet service.
type Ledger interface {
	Credit(ctx context.Context, userID int, amount int64, meta walletservice.TxMeta) (*domain.Transaction, error)
	Debit(ctx context.Context, userID int, amount int64, meta walletservice.TxMeta) (*domain.Transaction, error)
}

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}

type Service struct {
	repo      TournamentRepo
	userRepo  UserRepo
	ledger    Ledger
	auditRepo AuditRepo
	txManager pg.TXManager
	notifier  notify.Notifier
}

func New(repo TournamentRepo, userRepo UserRepo, ledger Ledger, auditRepo AuditRepo, txManager pg.TXManager, notifier notify.Notifier) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		ledger:    ledger,
		auditRepo: auditRepo,
		txManager: txManager,
		notifier:  notifier,
	}
}

func (s *Service) Create(ctx context.Context, adminID int, t *domain.Tournament, ip string) (*domain.Tournament, error) {
	t.Status = domain.TournamentCreated
	if len(t.PrizeSplit) == 0 {
		t.PrizeSplit = []int{50, 30, 20}
	}
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, adminID, domain.AuditCreateTournament, created.ID, map[string]any{"title": created.Title, "entryFee": created.EntryFee}, ip)
	return created, nil
}

// Open publishes a freshly created tournament for registration.
func (s *Service) Open(ctx context.Context, adminID, id int, ip string) error {
	ok, err := s.repo.UpdateStatus(ctx, id, domain.TournamentOpen, domain.TournamentCreated)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidMove
	}
	s.audit(ctx, adminID, domain.AuditUpdateTournament, id, map[string]any{"status": domain.TournamentOpen}, ip)
	return nil
}

// Start moves a confirmed tournament live.
func (s *Service) Start(ctx context.Context, adminID, id int, ip string) error {
	ok, err := s.repo.UpdateStatus(ctx, id, domain.TournamentLive, domain.TournamentConfirmed)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidMove
	}
	s.audit(ctx, adminID, domain.AuditUpdateTournament, id, map[string]any{"status": domain.TournamentLive}, ip)
	return nil
}

// Confirm is the sweep's transition for a filled tournament approaching
// match time.
func (s *Service) Confirm(ctx context.Context, id int) error {
	ok, err := s.repo.UpdateStatus(ctx, id, domain.TournamentConfirmed, domain.TournamentOpen)
	if err != nil {
		return err
	}
	if !ok {
		// Someone else moved it first; nothing to do.
		return nil
	}
	return nil
}

// TournamentView is a tournament plus its roster, winners, and whether room
// credentials may be shown to the requester.
type TournamentView struct {
	Tournament *domain.Tournament
	Players    []domain.Player
	Winners    []domain.Winner
	ShowRoom   bool
}

// Get returns the tournament with room credentials gated: they are visible
// only to a joined player, once the match is CONFIRMED or LIVE, inside the
// reveal window before match time.
func (s *Service) Get(ctx context.Context, id, requesterID int) (*TournamentView, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}

	players, err := s.repo.ListPlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	winners, err := s.repo.ListWinners(ctx, id)
	if err != nil {
		return nil, err
	}

	showRoom := false
	if requesterID != 0 && (t.Status == domain.TournamentConfirmed || t.Status == domain.TournamentLive) &&
		time.Until(t.MatchTime) <= roomRevealWindow {
		for _, p := range players {
			if p.UserID == requesterID {
				showRoom = true
				break
			}
		}
	}
	if !showRoom {
		t.RoomID = ""
		t.RoomPassword = ""
	}

	return &TournamentView{Tournament: t, Players: players, Winners: winners, ShowRoom: showRoom}, nil
}

func (s *Service) List(ctx context.Context, statuses []string) ([]domain.Tournament, map[int]int, error) {
	tournaments, err := s.repo.List(ctx, statuses)
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[int]int, len(tournaments))
	for _, t := range tournaments {
		n, err := s.repo.CountPlayers(ctx, t.ID)
		if err != nil {
			return nil, nil, err
		}
		counts[t.ID] = n
	}
	return tournaments, counts, nil
}

// Join collects the entry fee and appends the player to the roster as one
// atomic unit: the row lock on the tournament serializes concurrent joins,
// and a roster failure rolls the debit back.
func (s *Service) Join(ctx context.Context, userID, tournamentID int) (*domain.Player, error) {
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

	var player *domain.Player
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		t, err := s.repo.FindByIDForUpdate(ctx, tournamentID)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrNotFound
		}
		if t.Status != domain.TournamentOpen {
			return ErrNotOpen
		}

		if _, err := s.ledger.Debit(ctx, userID, t.EntryFee, walletservice.TxMeta{
			Type:         domain.TxEntryFee,
			Description:  "Entry fee for " + t.Title,
			TournamentID: &t.ID,
		}); err != nil {
			return err
		}

		p, err := s.repo.AddPlayer(ctx, &domain.Player{
			TournamentID: tournamentID,
			UserID:       userID,
			GameName:     user.GameName,
		}, t.MaxPlayers)
		if errors.Is(err, tournamentrepo.ErrDuplicatePlayer) {
			return ErrAlreadyJoined
		}
		if err != nil {
			return err
		}
		if p == nil {
			return ErrFull
		}
		player = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// Cancel aborts a non-terminal tournament and refunds every joined player.
// Rejected when winners are already recorded.
func (s *Service) Cancel(ctx context.Context, adminID, id int, ip string) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}

	winners, err := s.repo.ListWinners(ctx, id)
	if err != nil {
		return err
	}
	if len(winners) > 0 {
		return ErrHasWinners
	}

	ok, err := s.repo.UpdateStatus(ctx, id, domain.TournamentCancelled,
		domain.TournamentCreated, domain.TournamentOpen, domain.TournamentVoting,
		domain.TournamentConfirmed, domain.TournamentLive)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTerminal
	}

	s.audit(ctx, adminID, domain.AuditCancelTournament, id, map[string]any{"title": t.Title}, ip)

	if err := s.RefundEntryFees(ctx, id); err != nil {
		zap.L().Error("refund pass finished with errors", zap.Int("tournamentID", id), zap.Error(err))
	}
	return nil
}

// RefundEntryFees reverses every joined player's entry fee. A single
// player's failure is retried and logged but never aborts the remaining
// refunds.
func (s *Service) RefundEntryFees(ctx context.Context, tournamentID int) error {
	t, err := s.repo.FindByID(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}
	players, err := s.repo.ListPlayers(ctx, tournamentID)
	if err != nil {
		return err
	}

	var failed int
	for _, p := range players {
		var lastErr error
		for attempt := 1; attempt <= refundAttempts; attempt++ {
			_, lastErr = s.ledger.Credit(ctx, p.UserID, t.EntryFee, walletservice.TxMeta{
				Type:         domain.TxEntryFee,
				Description:  "Entry fee refund for " + t.Title,
				TournamentID: &t.ID,
			})
			if lastErr == nil {
				break
			}
		}
		if lastErr != nil {
			failed++
			zap.L().Error("refund failed after retries",
				zap.Int("tournamentID", tournamentID),
				zap.Int("userID", p.UserID),
				zap.Error(lastErr))
			continue
		}
		s.notifier.Notify(ctx, p.UserID, "Match cancelled",
			fmt.Sprintf("%s was cancelled, your entry fee of ₹%d has been refunded.", t.Title, t.EntryFee))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d refunds failed", failed, len(players))
	}
	return nil
}

type WinnerInput struct {
	UserID int
	Rank   int
}

// SubmitResults settles a tournament: collects the pot, holds back the
// commission, pays ranked prizes from the per-tournament split, records the
// commission audit entry, and completes the tournament. The whole settlement
// commits as one transaction; the status compare-and-set makes re-submission
// fail with ErrAlreadySettled before any payout repeats.
func (s *Service) SubmitResults(ctx context.Context, adminID, id int, winners []WinnerInput, ip string) ([]domain.Winner, error) {
	if len(winners) == 0 {
		return nil, ErrEmptyWinners
	}

	sort.Slice(winners, func(i, j int) bool { return winners[i].Rank < winners[j].Rank })

	// Duplicate ranks keep the first entry only.
	deduped := winners[:0:0]
	seenRank := make(map[int]bool, len(winners))
	for _, w := range winners {
		if seenRank[w.Rank] {
			continue
		}
		seenRank[w.Rank] = true
		deduped = append(deduped, w)
	}
	winners = deduped

	var resolved []domain.Winner
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		t, err := s.repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrNotFound
		}
		if t.Status == domain.TournamentCompleted {
			return ErrAlreadySettled
		}

		ok, err := s.repo.UpdateStatus(ctx, id, domain.TournamentCompleted,
			domain.TournamentConfirmed, domain.TournamentLive)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotSettleable
		}

		players, err := s.repo.ListPlayers(ctx, id)
		if err != nil {
			return err
		}

		// Commission is computed from fees actually collected, not the
		// advertised prize pool.
		totalPot := t.EntryFee * int64(len(players))
		netPool := totalPot * int64(100-t.CommissionRate) / 100

		// The split table is indexed by rank: rank beyond its length pays
		// nothing.
		var distributed int64
		for _, w := range winners {
			var prize int64
			if w.Rank <= len(t.PrizeSplit) {
				prize = netPool * int64(t.PrizeSplit[w.Rank-1]) / 100
			}

			winner := domain.Winner{TournamentID: id, UserID: w.UserID, Rank: w.Rank, Prize: prize}
			if err := s.repo.SaveWinner(ctx, &winner); err != nil {
				return err
			}
			resolved = append(resolved, winner)

			if prize == 0 {
				continue
			}
			if _, err := s.ledger.Credit(ctx, w.UserID, prize, walletservice.TxMeta{
				Type:         domain.TxPrizeWinnings,
				Description:  fmt.Sprintf("Won Rank %d in %s", w.Rank, t.Title),
				TournamentID: &t.ID,
			}); err != nil {
				return err
			}
			distributed += prize
		}

		// Undistributed remainders stay with the house.
		houseEarnings := totalPot - distributed
		if houseEarnings > 0 {
			details, _ := json.Marshal(map[string]any{
				"tournamentId":     id,
				"totalPot":         totalPot,
				"netPool":          netPool,
				"commissionAmount": totalPot - netPool,
				"houseEarnings":    houseEarnings,
			})
			if err := s.auditRepo.Append(ctx, &domain.AuditEntry{
				AdminID:    adminID,
				Action:     domain.AuditCommissionLog,
				TargetType: "Tournament",
				TargetID:   id,
				Details:    string(details),
				IPAddress:  ip,
			}); err != nil {
				return err
			}
		}

		details, _ := json.Marshal(map[string]any{"winners": resolved})
		return s.auditRepo.Append(ctx, &domain.AuditEntry{
			AdminID:    adminID,
			Action:     domain.AuditSubmitResults,
			TargetType: "Tournament",
			TargetID:   id,
			Details:    string(details),
			IPAddress:  ip,
		})
	})
	if err != nil {
		return nil, err
	}

	for _, w := range resolved {
		if w.Prize > 0 {
			s.notifier.Notify(ctx, w.UserID, "Prize credited",
				fmt.Sprintf("You won ₹%d (Rank %d).", w.Prize, w.Rank))
		}
	}
	return resolved, nil
}

func (s *Service) UpdateRoom(ctx context.Context, adminID, id int, roomID, roomPassword, ip string) error {
	if err := s.repo.UpdateRoom(ctx, id, roomID, roomPassword); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.audit(ctx, adminID, domain.AuditUpdateTournament, id, map[string]any{"roomUpdated": true}, ip)
	return nil
}

// Delete removes a tournament record outright. Permitted only for an empty
// roster; anything with paying players must be cancelled instead.
func (s *Service) Delete(ctx context.Context, adminID, id int, ip string) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRosterNotEmpty
	}
	s.audit(ctx, adminID, domain.AuditDeleteTournament, id, map[string]any{"title": t.Title}, ip)
	return nil
}

func (s *Service) audit(ctx context.Context, adminID int, action string, targetID int, details map[string]any, ip string) {
	payload, _ := json.Marshal(details)
	if err := s.auditRepo.Append(ctx, &domain.AuditEntry{
		AdminID:    adminID,
		Action:     action,
		TargetType: "Tournament",
		TargetID:   targetID,
		Details:    string(payload),
		IPAddress:  ip,
	}); err != nil {
		zap.L().Error("audit log failure", zap.String("action", action), zap.Error(err))
	}
}
