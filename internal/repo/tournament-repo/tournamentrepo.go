package tournamentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicatePlayer surfaces the roster's unique constraint so the service
// can report AlreadyJoined without a pre-read.
var ErrDuplicatePlayer = errors.New("player already in roster")

// SweepRow is what the periodic sweep needs to decide a tournament's fate:
// confirm it, open a poll, or resolve an expired one.
type SweepRow struct {
	ID           int
	Status       string
	MinPlayers   int
	VotingEndsAt *time.Time
	Joined       int
}

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const tournamentColumns = `id, title, map, mode, type, match_time, entry_fee, prize_pool,
		commission_rate, prize_split, max_players, min_players, room_id, room_password,
		status, voting_ends_at, created_at`

func scanTournament(row pgx.Row) (*domain.Tournament, error) {
	var t domain.Tournament
	err := row.Scan(&t.ID, &t.Title, &t.Map, &t.Mode, &t.Type, &t.MatchTime, &t.EntryFee,
		&t.PrizePool, &t.CommissionRate, &t.PrizeSplit, &t.MaxPlayers, &t.MinPlayers,
		&t.RoomID, &t.RoomPassword, &t.Status, &t.VotingEndsAt, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	query := `
        INSERT INTO tournaments (title, map, mode, type, match_time, entry_fee, prize_pool,
            commission_rate, prize_split, max_players, min_players, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, t.Title, t.Map, t.Mode, t.Type, t.MatchTime, t.EntryFee,
		t.PrizePool, t.CommissionRate, t.PrizeSplit, t.MaxPlayers, t.MinPlayers, t.Status).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't create tournament", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Tournament, error) {
	query := `
        SELECT ` + tournamentColumns + `
        FROM tournaments
        WHERE id = $1
    `
	t, err := scanTournament(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find tournament", zap.Error(err))
		return nil, err
	}
	return t, nil
}

// FindByIDForUpdate locks the tournament row for the rest of the enclosing
// transaction. Joins on the same tournament serialize on this lock; different
// tournaments never contend.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Tournament, error) {
	query := `
        SELECT ` + tournamentColumns + `
        FROM tournaments
        WHERE id = $1
        FOR UPDATE
    `
	t, err := scanTournament(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock tournament", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) List(ctx context.Context, statuses []string) ([]domain.Tournament, error) {
	query := `
        SELECT ` + tournamentColumns + `
        FROM tournaments
        WHERE cardinality($1::text[]) = 0 OR status = ANY($1)
        ORDER BY match_time ASC
    `
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		zap.L().Error("can't list tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			zap.L().Error("can't scan tournament row", zap.Error(err))
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *Repository) UpdateRoom(ctx context.Context, id int, roomID, roomPassword string) error {
	query := `
        UPDATE tournaments
        SET room_id = $1, room_password = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, roomID, roomPassword, id)
	if err != nil {
		zap.L().Error("can't update room details", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus is the state machine's only write: a compare-and-set from one
// of the expected statuses. ok is false when the tournament has already moved
// on, letting racing transitions no-op.
func (r *Repository) UpdateStatus(ctx context.Context, id int, to string, from ...string) (bool, error) {
	query := `
        UPDATE tournaments
        SET status = $1
        WHERE id = $2 AND status = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update tournament status", zap.Int("tournamentID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) AddPlayer(ctx context.Context, player *domain.Player, maxPlayers int) (*domain.Player, error) {
	query := `
        INSERT INTO tournament_players (tournament_id, user_id, game_name, slot)
        SELECT $1, $2, $3, count(*) + 1
        FROM tournament_players
        WHERE tournament_id = $1
        HAVING count(*) < $4
        RETURNING id, slot, joined_at
    `
	err := r.db.QueryRow(ctx, query, player.TournamentID, player.UserID, player.GameName, maxPlayers).
		Scan(&player.ID, &player.Slot, &player.JoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// The HAVING guard filtered the insert: roster is at capacity.
		return nil, nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrDuplicatePlayer
	}
	if err != nil {
		zap.L().Error("can't add player", zap.Int("tournamentID", player.TournamentID), zap.Error(err))
		return nil, err
	}
	return player, nil
}

func (r *Repository) ListPlayers(ctx context.Context, tournamentID int) ([]domain.Player, error) {
	query := `
        SELECT id, tournament_id, user_id, game_name, slot, joined_at
        FROM tournament_players
        WHERE tournament_id = $1
        ORDER BY slot ASC
    `
	rows, err := r.db.Query(ctx, query, tournamentID)
	if err != nil {
		zap.L().Error("can't list players", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.TournamentID, &p.UserID, &p.GameName, &p.Slot, &p.JoinedAt); err != nil {
			zap.L().Error("can't scan player row", zap.Error(err))
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func (r *Repository) CountPlayers(ctx context.Context, tournamentID int) (int, error) {
	query := `
        SELECT count(*)
        FROM tournament_players
        WHERE tournament_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, tournamentID).Scan(&count); err != nil {
		zap.L().Error("can't count players", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) IsJoined(ctx context.Context, tournamentID, userID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM tournament_players
            WHERE tournament_id = $1 AND user_id = $2
        )
    `
	var joined bool
	if err := r.db.QueryRow(ctx, query, tournamentID, userID).Scan(&joined); err != nil {
		zap.L().Error("can't check roster membership", zap.Error(err))
		return false, err
	}
	return joined, nil
}

func (r *Repository) SaveWinner(ctx context.Context, w *domain.Winner) error {
	query := `
        INSERT INTO tournament_winners (tournament_id, user_id, rank, prize)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, w.TournamentID, w.UserID, w.Rank, w.Prize); err != nil {
		zap.L().Error("can't save winner", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListWinners(ctx context.Context, tournamentID int) ([]domain.Winner, error) {
	query := `
        SELECT tournament_id, user_id, rank, prize
        FROM tournament_winners
        WHERE tournament_id = $1
        ORDER BY rank ASC
    `
	rows, err := r.db.Query(ctx, query, tournamentID)
	if err != nil {
		zap.L().Error("can't list winners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var winners []domain.Winner
	for rows.Next() {
		var w domain.Winner
		if err := rows.Scan(&w.TournamentID, &w.UserID, &w.Rank, &w.Prize); err != nil {
			zap.L().Error("can't scan winner row", zap.Error(err))
			return nil, err
		}
		winners = append(winners, w)
	}
	return winners, nil
}

// SetVotingDeadline opens the poll: OPEN/CONFIRMED -> VOTING with the
// deadline stamped, all in one conditional update.
func (r *Repository) SetVotingDeadline(ctx context.Context, id int, deadline time.Time) (bool, error) {
	query := `
        UPDATE tournaments
        SET status = 'VOTING', voting_ends_at = $1
        WHERE id = $2 AND status IN ('OPEN', 'CONFIRMED')
    `
	tag, err := r.db.Exec(ctx, query, deadline, id)
	if err != nil {
		zap.L().Error("can't open voting", zap.Int("tournamentID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpsertVote is last-vote-wins: a repeat vote overwrites the previous choice.
func (r *Repository) UpsertVote(ctx context.Context, vote *domain.Vote) error {
	query := `
        INSERT INTO tournament_votes (tournament_id, user_id, choice)
        VALUES ($1, $2, $3)
        ON CONFLICT (tournament_id, user_id)
        DO UPDATE SET choice = EXCLUDED.choice, cast_at = now()
    `
	if _, err := r.db.Exec(ctx, query, vote.TournamentID, vote.UserID, vote.Choice); err != nil {
		zap.L().Error("can't record vote", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountVotes(ctx context.Context, tournamentID int) (yes, no int, err error) {
	query := `
        SELECT
            count(*) FILTER (WHERE choice = 'YES'),
            count(*) FILTER (WHERE choice = 'NO')
        FROM tournament_votes
        WHERE tournament_id = $1
    `
	if err := r.db.QueryRow(ctx, query, tournamentID).Scan(&yes, &no); err != nil {
		zap.L().Error("can't count votes", zap.Error(err))
		return 0, 0, err
	}
	return yes, no, nil
}

// FindSweepDue returns non-terminal tournaments whose match time falls inside
// the lead window, together with their roster size. The sweeper decides per
// row whether to confirm or open a poll.
func (r *Repository) FindSweepDue(ctx context.Context, leadSeconds int) ([]SweepRow, error) {
	query := `
        SELECT t.id, t.status, t.min_players, t.voting_ends_at,
            (SELECT count(*) FROM tournament_players p WHERE p.tournament_id = t.id) AS joined
        FROM tournaments t
        WHERE (t.status = 'OPEN' AND t.match_time <= now() + make_interval(secs => $1))
           OR (t.status = 'VOTING' AND t.voting_ends_at <= now())
        ORDER BY t.match_time ASC
    `
	rows, err := r.db.Query(ctx, query, leadSeconds)
	if err != nil {
		zap.L().Error("can't find sweep-due tournaments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []SweepRow
	for rows.Next() {
		var row SweepRow
		if err := rows.Scan(&row.ID, &row.Status, &row.MinPlayers, &row.VotingEndsAt, &row.Joined); err != nil {
			zap.L().Error("can't scan sweep row", zap.Error(err))
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	query := `
        DELETE FROM tournaments
        WHERE id = $1
          AND NOT EXISTS (SELECT 1 FROM tournament_players WHERE tournament_id = $1)
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete tournament", zap.Int("tournamentID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	query := `
        SELECT count(*)
        FROM tournaments
        WHERE status IN ('OPEN', 'VOTING', 'CONFIRMED', 'LIVE')
    `
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("can't count active tournaments", zap.Error(err))
		return 0, err
	}
	return count, nil
}
