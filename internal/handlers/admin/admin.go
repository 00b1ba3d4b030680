package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/dto"
	"github.com/battlearena/battlearena/internal/service/adminservice"
	"github.com/battlearena/battlearena/pkg/auth"
	"github.com/battlearena/battlearena/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context) (*adminservice.Stats, error)
	SetBan(ctx context.Context, adminID, userID int, banned bool, reason, ip string) error
	GetUser(ctx context.Context, id int) (*domain.User, []domain.Transaction, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Dashboard godoc
//
//	@Summary		Platform dashboard
//	@Description	User, tournament and pending-queue counts plus lifetime commission revenue
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		TotalUsers:         stats.TotalUsers,
		ActiveTournaments:  stats.ActiveTournaments,
		PendingDeposits:    stats.PendingDeposits,
		PendingWithdrawals: stats.PendingWithdrawals,
		Revenue:            stats.Revenue,
	})
}

// SetBan godoc
//
//	@Summary		Ban or unban a player
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int				true	"User ID"
//	@Param			request	body		dto.BanRequestDTO	true	"ban or unban with reason"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/ban [post]
func (h *AdminHandler) SetBan(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.BanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.adminService.SetBan(r.Context(), adminID, userID, req.Action == "ban", req.Reason, utils.ClientIP(r))
	if err != nil {
		if errors.Is(err, adminservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User " + req.Action + "ned"})
}

// GetUser godoc
//
//	@Summary		Inspect a player account
//	@Description	Account profile with its full transaction history
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.AdminUserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, transactions, err := h.adminService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, adminservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AdminUserResponseDTO{
		ID:                user.ID,
		Phone:             user.Phone,
		Username:          user.Username,
		GameName:          user.GameName,
		Role:              user.Role,
		WalletBalance:     user.WalletBalance,
		LifetimeWithdrawn: user.LifetimeWithdrawn,
		KycStatus:         user.KycStatus,
		IsBanned:          user.IsBanned,
		BanReason:         user.BanReason,
		Transactions:      make([]dto.TransactionResponseDTO, 0, len(transactions)),
	}
	for _, t := range transactions {
		response.Transactions = append(response.Transactions, dto.TransactionResponseDTO{
			ID:           t.ID,
			Type:         t.Type,
			Status:       t.Status,
			Amount:       t.Amount,
			BalanceAfter: t.BalanceAfter,
			TournamentID: t.TournamentID,
			Description:  t.Description,
			CreatedAt:    t.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
