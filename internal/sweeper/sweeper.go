package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/battlearena/battlearena/internal/config"
	"github.com/battlearena/battlearena/internal/domain"
	tournamentrepo "github.com/battlearena/battlearena/internal/repo/tournament-repo"
)

// sweepingTournaments guards against the same tournament being processed by
// two overlapping sweep runs.
var sweepingTournaments sync.Map

type TournamentRepo interface {
	FindSweepDue(ctx context.Context, leadSeconds int) ([]tournamentrepo.SweepRow, error)
}

// Poller drives the voting subsystem from the sweep.
type Poller interface {
	OpenPoll(ctx context.Context, tournamentID int) error
	ResolvePoll(ctx context.Context, tournamentID int) error
}

// Confirmer locks in a sufficiently filled tournament.
type Confirmer interface {
	Confirm(ctx context.Context, id int) error
}

// DepositExpirer fails deposits that outlived their verification window.
type DepositExpirer interface {
	ExpireDeposits(ctx context.Context) error
}

// Service is the periodic deadline sweep. Polls with no further player
// activity still resolve on time because resolution runs here, on a timer,
// not on the next incoming request.
type Service struct {
	repo       TournamentRepo
	poller     Poller
	confirmer  Confirmer
	deposits   DepositExpirer
	workerPool WorkerPoolI
	interval   time.Duration
	votingLead time.Duration
}

func New(cfg *config.Config, repo TournamentRepo, poller Poller, confirmer Confirmer, deposits DepositExpirer) *Service {
	return &Service{
		repo:       repo,
		poller:     poller,
		confirmer:  confirmer,
		deposits:   deposits,
		workerPool: NewWorkerPool(10),
		interval:   cfg.SweepInterval,
		votingLead: cfg.VotingLead,
	}
}

func (s *Service) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.Sweep(ctx) }),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	zap.L().Info("sweeper started", zap.Duration("interval", s.interval))

	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			zap.L().Error("scheduler shutdown failed", zap.Error(err))
		}
		s.workerPool.Close()
	}()
	return nil
}

// Sweep runs one pass: expire stale deposits, then fan the due tournaments
// out to the pool.
func (s *Service) Sweep(ctx context.Context) {
	if err := s.deposits.ExpireDeposits(ctx); err != nil {
		zap.L().Error("deposit expiry pass failed", zap.Error(err))
	}

	rows, err := s.repo.FindSweepDue(ctx, int(s.votingLead.Seconds()))
	if err != nil {
		zap.L().Error("can't fetch sweep-due tournaments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, row := range rows {
		row := row

		if _, loaded := sweepingTournaments.LoadOrStore(row.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingTournaments.Delete(row.ID)
				return s.handle(ctx, row)
			})
			if err != nil {
				sweepingTournaments.Delete(row.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching sweep tasks", zap.Error(err))
	}
}

func (s *Service) handle(ctx context.Context, row tournamentrepo.SweepRow) error {
	switch row.Status {
	case domain.TournamentOpen:
		if row.Joined < row.MinPlayers {
			return s.poller.OpenPoll(ctx, row.ID)
		}
		return s.confirmer.Confirm(ctx, row.ID)
	case domain.TournamentVoting:
		if row.VotingEndsAt != nil && time.Now().After(*row.VotingEndsAt) {
			return s.poller.ResolvePoll(ctx, row.ID)
		}
	}
	return nil
}
