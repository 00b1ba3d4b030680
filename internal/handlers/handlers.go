package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/battlearena/battlearena/docs"
	adminhandlers "github.com/battlearena/battlearena/internal/handlers/admin"
	authhandlers "github.com/battlearena/battlearena/internal/handlers/auth"
	disputehandlers "github.com/battlearena/battlearena/internal/handlers/disputes"
	tournamenthandlers "github.com/battlearena/battlearena/internal/handlers/tournaments"
	wallethandlers "github.com/battlearena/battlearena/internal/handlers/wallet"
	withdrawalhandlers "github.com/battlearena/battlearena/internal/handlers/withdrawals"
	"github.com/battlearena/battlearena/internal/service"
	"github.com/battlearena/battlearena/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	InitiateDeposit(w http.ResponseWriter, r *http.Request)
	SubmitUTR(w http.ResponseWriter, r *http.Request)
	GetPendingDeposits(w http.ResponseWriter, r *http.Request)
	ResolveDeposit(w http.ResponseWriter, r *http.Request)
}

type TournamentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Vote(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	UpdateRoom(w http.ResponseWriter, r *http.Request)
	SubmitResults(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Handle(w http.ResponseWriter, r *http.Request)
}

type DisputeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	GetPending(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	SetBan(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WalletHandler     WalletHandler
	TournamentHandler TournamentHandler
	WithdrawalHandler WithdrawalHandler
	DisputeHandler    DisputeHandler
	AdminHandler      AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		TournamentHandler: tournamenthandlers.New(s.TournamentService, s.VoteService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		DisputeHandler:    disputehandlers.New(s.DisputeService),
		AdminHandler:      adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetHistory)
				r.Post("/deposit", h.WalletHandler.InitiateDeposit)
				r.Post("/deposit/utr", h.WalletHandler.SubmitUTR)
			})

			r.Route("/tournaments", func(r chi.Router) {
				r.Get("/", h.TournamentHandler.List)
				r.Get("/{id}", h.TournamentHandler.Get)
				r.Post("/{id}/join", h.TournamentHandler.Join)
				r.Post("/{id}/vote", h.TournamentHandler.Vote)
			})

			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Request)
				r.Get("/", h.WithdrawalHandler.GetMy)
			})

			r.Route("/disputes", func(r chi.Router) {
				r.Post("/", h.DisputeHandler.Submit)
				r.Get("/", h.DisputeHandler.GetMy)
			})

			r.Route("/admin", func(r chi.Router) {
				r.With(auth.RequireCapability(auth.CapDashboardView)).
					Get("/dashboard", h.AdminHandler.Dashboard)
				r.Group(func(r chi.Router) {
					r.Use(auth.RequireCapability(auth.CapUserManage))
					r.Get("/users/{id}", h.AdminHandler.GetUser)
					r.Post("/users/{id}/ban", h.AdminHandler.SetBan)
				})

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireCapability(auth.CapDepositHandle))
					r.Get("/deposits", h.WalletHandler.GetPendingDeposits)
					r.Post("/deposits/{id}", h.WalletHandler.ResolveDeposit)
				})

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireCapability(auth.CapWithdrawalHandle))
					r.Get("/withdrawals", h.WithdrawalHandler.GetPending)
					r.Post("/withdrawals/{id}", h.WithdrawalHandler.Handle)
				})

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireCapability(auth.CapDisputeHandle))
					r.Get("/disputes", h.DisputeHandler.GetPending)
					r.Post("/disputes/{id}", h.DisputeHandler.Resolve)
				})

				r.Route("/tournaments", func(r chi.Router) {
					r.Use(auth.RequireCapability(auth.CapTournamentManage))
					r.Post("/", h.TournamentHandler.Create)
					r.Post("/{id}/open", h.TournamentHandler.Open)
					r.Post("/{id}/start", h.TournamentHandler.Start)
					r.Put("/{id}/room", h.TournamentHandler.UpdateRoom)
					r.With(auth.RequireCapability(auth.CapResultsSubmit)).
						Post("/{id}/results", h.TournamentHandler.SubmitResults)
					r.Delete("/{id}", h.TournamentHandler.Cancel)
					r.Delete("/{id}/purge", h.TournamentHandler.Delete)
				})
			})
		})
	})

	return r
}
