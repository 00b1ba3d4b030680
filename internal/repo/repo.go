package repo

import (
	"github.com/battlearena/battlearena/internal/pg"
	auditrepo "github.com/battlearena/battlearena/internal/repo/audit-repo"
	disputerepo "github.com/battlearena/battlearena/internal/repo/dispute-repo"
	tournamentrepo "github.com/battlearena/battlearena/internal/repo/tournament-repo"
	transactionrepo "github.com/battlearena/battlearena/internal/repo/transaction-repo"
	userrepo "github.com/battlearena/battlearena/internal/repo/user-repo"
	withdrawalrepo "github.com/battlearena/battlearena/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	TransactionRepo *transactionrepo.Repository
	TournamentRepo  *tournamentrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	DisputeRepo     *disputerepo.Repository
	AuditRepo       *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		TournamentRepo:  tournamentrepo.New(conn, txManager),
		WithdrawalRepo:  withdrawalrepo.New(conn),
		DisputeRepo:     disputerepo.New(conn),
		AuditRepo:       auditrepo.New(conn),
	}
}
