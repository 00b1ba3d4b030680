package tournaments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/dto"
	"github.com/battlearena/battlearena/internal/service/tournamentservice"
	"github.com/battlearena/battlearena/internal/service/voteservice"
	"github.com/battlearena/battlearena/internal/service/walletservice"
	"github.com/battlearena/battlearena/pkg/auth"
	"github.com/battlearena/battlearena/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, adminID int, t *domain.Tournament, ip string) (*domain.Tournament, error)
	Open(ctx context.Context, adminID, id int, ip string) error
	Start(ctx context.Context, adminID, id int, ip string) error
	Get(ctx context.Context, id, requesterID int) (*tournamentservice.TournamentView, error)
	List(ctx context.Context, statuses []string) ([]domain.Tournament, map[int]int, error)
	Join(ctx context.Context, userID, tournamentID int) (*domain.Player, error)
	Cancel(ctx context.Context, adminID, id int, ip string) error
	SubmitResults(ctx context.Context, adminID, id int, winners []tournamentservice.WinnerInput, ip string) ([]domain.Winner, error)
	UpdateRoom(ctx context.Context, adminID, id int, roomID, roomPassword, ip string) error
	Delete(ctx context.Context, adminID, id int, ip string) error
}

type VoteService interface {
	Cast(ctx context.Context, userID, tournamentID int, choice string) error
}

type TournamentHandler struct {
	tournamentService Service
	voteService       VoteService
}

func New(tournamentService Service, voteService VoteService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
		voteService:       voteService,
	}
}

// List godoc
//
//	@Summary		List tournaments
//	@Description	Tournaments filtered by status, soonest match first
//	@Tags			Tournaments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status	query		string	false	"Comma-separated statuses (default OPEN,VOTING,CONFIRMED,LIVE)"
//	@Success		200		{array}		dto.TournamentResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments [get]
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	var statuses []string
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, strings.ToUpper(strings.TrimSpace(s)))
		}
	}

	list, counts, err := h.tournamentService.List(r.Context(), statuses)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TournamentResponseDTO, 0, len(list))
	for i := range list {
		item := toTournamentDTO(&list[i], counts[list[i].ID], false)
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a tournament
//	@Description	Tournament details with roster; room credentials only for joined players near match time
//	@Tags			Tournaments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	dto.TournamentResponseDTO
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/{id} [get]
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	view, err := h.tournamentService.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, tournamentservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := toTournamentDTO(view.Tournament, len(view.Players), view.ShowRoom)
	for _, p := range view.Players {
		response.Players = append(response.Players, dto.PlayerDTO{
			UserID:   p.UserID,
			GameName: p.GameName,
			Slot:     p.Slot,
			JoinedAt: p.JoinedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Join godoc
//
//	@Summary		Join a tournament
//	@Description	Debit the entry fee and take a roster slot, atomically
//	@Tags			Tournaments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	dto.PlayerDTO
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		403	{object}	utils.Response	"Account banned"
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		409	{object}	utils.Response	"Full, closed or already joined"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/{id}/join [post]
func (h *TournamentHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	player, err := h.tournamentService.Join(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tournamentservice.ErrFull),
			errors.Is(err, tournamentservice.ErrAlreadyJoined),
			errors.Is(err, tournamentservice.ErrNotOpen):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, tournamentservice.ErrBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlayerDTO{
		UserID:   player.UserID,
		GameName: player.GameName,
		Slot:     player.Slot,
		JoinedAt: player.JoinedAt,
	})
}

// Vote godoc
//
//	@Summary		Vote on a low-participation tournament
//	@Description	Joined players vote YES (play anyway) or NO (cancel and refund)
//	@Tags			Tournaments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"Tournament ID"
//	@Param			request	body		dto.VoteRequestDTO	true	"Vote choice"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Not a joined player"
//	@Failure		404		{object}	utils.Response	"Tournament not found"
//	@Failure		409		{object}	utils.Response	"Not in a voting phase"
//	@Failure		410		{object}	utils.Response	"Voting deadline passed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/{id}/vote [post]
func (h *TournamentHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	var req dto.VoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.voteService.Cast(r.Context(), userID, id, req.Choice)
	if err != nil {
		switch {
		case errors.Is(err, voteservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, voteservice.ErrNotJoined):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, voteservice.ErrNotVoting):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, voteservice.ErrPollOver):
			utils.RespondWithError(w, http.StatusGone, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Vote recorded"})
}

// Create godoc
//
//	@Summary		Create a tournament
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateTournamentRequestDTO	true	"Tournament definition"
//	@Success		201		{object}	dto.TournamentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments [post]
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateTournamentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.tournamentService.Create(r.Context(), adminID, &domain.Tournament{
		Title:          req.Title,
		Map:            req.Map,
		Mode:           req.Mode,
		Type:           req.Type,
		MatchTime:      req.MatchTime,
		EntryFee:       req.EntryFee,
		PrizePool:      req.PrizePool,
		CommissionRate: req.CommissionRate,
		PrizeSplit:     req.PrizeSplit,
		MaxPlayers:     req.MaxPlayers,
		MinPlayers:     req.MinPlayers,
	}, utils.ClientIP(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTournamentDTO(t, 0, false))
}

// Open godoc
//
//	@Summary		Open registration
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		409	{object}	utils.Response	"Invalid status transition"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id}/open [post]
func (h *TournamentHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.tournamentService.Open, "Registration opened")
}

// Start godoc
//
//	@Summary		Mark a confirmed tournament live
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		409	{object}	utils.Response	"Invalid status transition"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id}/start [post]
func (h *TournamentHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.tournamentService.Start, "Tournament is live")
}

func (h *TournamentHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, adminID, id int, ip string) error, message string) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	err = fn(r.Context(), adminID, id, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tournamentservice.ErrInvalidMove):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

// UpdateRoom godoc
//
//	@Summary		Set room credentials
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"Tournament ID"
//	@Param			request	body		dto.UpdateRoomRequestDTO	true	"Room credentials"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Tournament not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id}/room [put]
func (h *TournamentHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	var req dto.UpdateRoomRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.tournamentService.UpdateRoom(r.Context(), adminID, id, req.RoomID, req.RoomPassword, utils.ClientIP(r))
	if err != nil {
		if errors.Is(err, tournamentservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Room updated"})
}

// SubmitResults godoc
//
//	@Summary		Submit results and settle
//	@Description	Pays ranked prizes from the pot net of commission and completes the tournament
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Tournament ID"
//	@Param			request	body		dto.SubmitResultsRequestDTO	true	"Ranked winners"
//	@Success		200		{array}		dto.WinnerDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Access denied"
//	@Failure		404		{object}	utils.Response	"Tournament not found"
//	@Failure		409		{object}	utils.Response	"Already settled or not settleable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id}/results [post]
func (h *TournamentHandler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	var req dto.SubmitResultsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	winners := make([]tournamentservice.WinnerInput, 0, len(req.Winners))
	for _, wi := range req.Winners {
		winners = append(winners, tournamentservice.WinnerInput{UserID: wi.UserID, Rank: wi.Rank})
	}

	saved, err := h.tournamentService.SubmitResults(r.Context(), adminID, id, winners, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tournamentservice.ErrAlreadySettled),
			errors.Is(err, tournamentservice.ErrNotSettleable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, tournamentservice.ErrEmptyWinners):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.WinnerDTO, 0, len(saved))
	for _, win := range saved {
		response = append(response, dto.WinnerDTO{UserID: win.UserID, Rank: win.Rank})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Cancel godoc
//
//	@Summary		Cancel a tournament
//	@Description	Moves the tournament to CANCELLED and refunds every entry fee
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		409	{object}	utils.Response	"Terminal state or winners recorded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id} [delete]
func (h *TournamentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	err = h.tournamentService.Cancel(r.Context(), adminID, id, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tournamentservice.ErrTerminal),
			errors.Is(err, tournamentservice.ErrHasWinners):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Tournament cancelled, entry fees refunded"})
}

// Delete godoc
//
//	@Summary		Delete an empty tournament
//	@Description	Hard delete, allowed only while the roster is empty
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		204	{object}	nil
//	@Failure		403	{object}	utils.Response	"Access denied"
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		409	{object}	utils.Response	"Roster not empty"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tournaments/{id}/purge [delete]
func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	err = h.tournamentService.Delete(r.Context(), adminID, id, utils.ClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, tournamentservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, tournamentservice.ErrRosterNotEmpty):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func toTournamentDTO(t *domain.Tournament, joined int, showRoom bool) dto.TournamentResponseDTO {
	resp := dto.TournamentResponseDTO{
		ID:             t.ID,
		Title:          t.Title,
		Map:            t.Map,
		Mode:           t.Mode,
		Type:           t.Type,
		MatchTime:      t.MatchTime,
		EntryFee:       t.EntryFee,
		PrizePool:      t.PrizePool,
		CommissionRate: t.CommissionRate,
		MaxPlayers:     t.MaxPlayers,
		MinPlayers:     t.MinPlayers,
		Joined:         joined,
		Status:         t.Status,
		VotingEndsAt:   t.VotingEndsAt,
	}
	if showRoom {
		resp.RoomID = t.RoomID
		resp.RoomPassword = t.RoomPassword
	}
	return resp
}
