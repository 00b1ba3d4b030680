package service

import (
	"github.com/battlearena/battlearena/internal/config"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
	"github.com/battlearena/battlearena/internal/repo"
	"github.com/battlearena/battlearena/internal/service/adminservice"
	"github.com/battlearena/battlearena/internal/service/authservice"
	"github.com/battlearena/battlearena/internal/service/disputeservice"
	"github.com/battlearena/battlearena/internal/service/tournamentservice"
	"github.com/battlearena/battlearena/internal/service/voteservice"
	"github.com/battlearena/battlearena/internal/service/walletservice"
	"github.com/battlearena/battlearena/internal/service/withdrawalservice"
	pkgauth "github.com/battlearena/battlearena/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	WalletService     *walletservice.Service
	TournamentService *tournamentservice.Service
	WithdrawalService *withdrawalservice.Service
	VoteService       *voteservice.Service
	DisputeService    *disputeservice.Service
	AdminService      *adminservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, notifier notify.Notifier) *Services {
	walletService := walletservice.New(repos.UserRepo, repos.TransactionRepo, repos.AuditRepo, txManager, notifier, cfg.DepositExpiry)
	tournamentService := tournamentservice.New(repos.TournamentRepo, repos.UserRepo, walletService, repos.AuditRepo, txManager, notifier)
	withdrawalService := withdrawalservice.New(repos.WithdrawalRepo, repos.UserRepo, repos.TransactionRepo, repos.AuditRepo, txManager, notifier, withdrawalservice.Limits{
		Min:          cfg.WithdrawalMin,
		Max:          cfg.WithdrawalMax,
		KycThreshold: cfg.KycThreshold,
	})
	voteService := voteservice.New(repos.TournamentRepo, tournamentService, cfg.VotingWindow)
	authService := authservice.New(repos.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	disputeService := disputeservice.New(repos.DisputeRepo, repos.TournamentRepo, repos.AuditRepo)
	adminService := adminservice.New(repos.UserRepo, repos.TournamentRepo, repos.TransactionRepo, repos.WithdrawalRepo, repos.AuditRepo)

	return &Services{
		AuthService:       authService,
		WalletService:     walletService,
		TournamentService: tournamentService,
		WithdrawalService: withdrawalService,
		VoteService:       voteService,
		DisputeService:    disputeService,
		AdminService:      adminService,
	}
}
