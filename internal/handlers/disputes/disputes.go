package disputes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/dto"
	"github.com/battlearena/battlearena/internal/service/disputeservice"
	"github.com/battlearena/battlearena/pkg/auth"
	"github.com/battlearena/battlearena/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, userID, tournamentID int, transactionID *int, claim string) (*domain.Dispute, error)
	Resolve(ctx context.Context, adminID, id int, accept bool, response, ip string) (*domain.Dispute, error)
	GetByUser(ctx context.Context, userID int) ([]domain.Dispute, error)
	GetPending(ctx context.Context) ([]domain.Dispute, error)
}

type DisputeHandler struct {
	disputeService Service
}

func New(disputeService Service) *DisputeHandler {
	return &DisputeHandler{
		disputeService: disputeService,
	}
}

// Submit godoc
//
//	@Summary		File a match dispute
//	@Description	Claim against a tournament the player took part in, optionally tied to a payout transaction
//	@Tags			Disputes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.DisputeRequestDTO	true	"Tournament and claim text"
//	@Success		201		{object}	dto.DisputeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Player did not join the tournament"
//	@Failure		404		{object}	utils.Response	"Tournament not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/disputes [post]
func (h *DisputeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DisputeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	dispute, err := h.disputeService.Submit(r.Context(), userID, req.TournamentID, req.TransactionID, req.Claim)
	if err != nil {
		switch {
		case errors.Is(err, disputeservice.ErrTournamentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, disputeservice.ErrNotJoined):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDisputeDTO(dispute))
}

// GetMy godoc
//
//	@Summary		List own disputes
//	@Tags			Disputes
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DisputeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/disputes [get]
func (h *DisputeHandler) GetMy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	list, err := h.disputeService.GetByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DisputeResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toDisputeDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPending godoc
//
//	@Summary		List pending disputes
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DisputeResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes [get]
func (h *DisputeHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.disputeService.GetPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DisputeResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, toDisputeDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Resolve godoc
//
//	@Summary		Resolve or reject a dispute
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Dispute ID"
//	@Param			request	body		dto.ResolveDisputeRequestDTO	true	"Decision with a written response"
//	@Success		200		{object}	dto.DisputeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Dispute not found"
//	@Failure		409		{object}	utils.Response	"Dispute already resolved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes/{id} [post]
func (h *DisputeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid dispute id")
		return
	}

	var req dto.ResolveDisputeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	dispute, err := h.disputeService.Resolve(r.Context(), adminID, id, req.Action == "resolve", req.Response, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, disputeservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, disputeservice.ErrAlreadyResolved):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDisputeDTO(dispute))
}

func toDisputeDTO(d *domain.Dispute) dto.DisputeResponseDTO {
	return dto.DisputeResponseDTO{
		ID:            d.ID,
		TournamentID:  d.TournamentID,
		TransactionID: d.TransactionID,
		Claim:         d.ClaimText,
		Status:        d.Status,
		AdminResponse: d.AdminResponse,
		ResolvedAt:    d.ResolvedAt,
		CreatedAt:     d.CreatedAt,
	}
}
