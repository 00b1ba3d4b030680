package dto

import (
	"errors"
	"time"

	"github.com/battlearena/battlearena/internal/domain"
)

type CreateTournamentRequestDTO struct {
	Title          string    `json:"title" example:"Friday Clash"`
	Map            string    `json:"map" example:"Bermuda"`
	Mode           string    `json:"mode" example:"BR"`
	Type           string    `json:"type" example:"Solo"`
	MatchTime      time.Time `json:"match_time"`
	EntryFee       int64     `json:"entry_fee" example:"100"`
	PrizePool      int64     `json:"prize_pool" example:"800"`
	CommissionRate int       `json:"commission_rate" example:"20"`
	PrizeSplit     []int     `json:"prize_split,omitempty" example:"50,30,20"`
	MaxPlayers     int       `json:"max_players" example:"48"`
	MinPlayers     int       `json:"min_players" example:"2"`
}

func (r *CreateTournamentRequestDTO) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.EntryFee < 0 {
		return errors.New("entry fee cannot be negative")
	}
	if r.CommissionRate < 0 || r.CommissionRate > 100 {
		return errors.New("commission rate must be between 0 and 100")
	}
	if r.MaxPlayers <= 0 || r.MinPlayers <= 0 || r.MinPlayers > r.MaxPlayers {
		return errors.New("invalid player limits")
	}
	if r.MatchTime.Before(time.Now()) {
		return errors.New("match time must be in the future")
	}
	total := 0
	for _, pct := range r.PrizeSplit {
		if pct <= 0 {
			return errors.New("prize split percentages must be positive")
		}
		total += pct
	}
	if total > 100 {
		return errors.New("prize split exceeds 100 percent")
	}
	return nil
}

type UpdateRoomRequestDTO struct {
	RoomID       string `json:"room_id" example:"53281"`
	RoomPassword string `json:"room_password" example:"br2024"`
}

func (r *UpdateRoomRequestDTO) Validate() error {
	if r.RoomID == "" {
		return errors.New("room id is required")
	}
	return nil
}

type WinnerDTO struct {
	UserID int `json:"user_id" example:"7"`
	Rank   int `json:"rank" example:"1"`
}

type SubmitResultsRequestDTO struct {
	Winners []WinnerDTO `json:"winners"`
}

func (r *SubmitResultsRequestDTO) Validate() error {
	if len(r.Winners) == 0 {
		return errors.New("winners list cannot be empty")
	}
	seen := make(map[int]bool, len(r.Winners))
	for _, w := range r.Winners {
		if w.UserID <= 0 || w.Rank <= 0 {
			return errors.New("winner entries need a user id and a positive rank")
		}
		if seen[w.UserID] {
			return errors.New("duplicate account in winners list")
		}
		seen[w.UserID] = true
	}
	return nil
}

type VoteRequestDTO struct {
	Choice string `json:"choice" example:"YES"`
}

func (r *VoteRequestDTO) Validate() error {
	if r.Choice != domain.VoteYes && r.Choice != domain.VoteNo {
		return errors.New("choice must be YES or NO")
	}
	return nil
}

type PlayerDTO struct {
	UserID   int       `json:"user_id"`
	GameName string    `json:"game_name"`
	Slot     int       `json:"slot"`
	JoinedAt time.Time `json:"joined_at"`
}

type TournamentResponseDTO struct {
	ID             int         `json:"id"`
	Title          string      `json:"title"`
	Map            string      `json:"map"`
	Mode           string      `json:"mode"`
	Type           string      `json:"type"`
	MatchTime      time.Time   `json:"match_time"`
	EntryFee       int64       `json:"entry_fee"`
	PrizePool      int64       `json:"prize_pool"`
	CommissionRate int         `json:"commission_rate"`
	MaxPlayers     int         `json:"max_players"`
	MinPlayers     int         `json:"min_players"`
	Joined         int         `json:"joined"`
	Status         string      `json:"status"`
	VotingEndsAt   *time.Time  `json:"voting_ends_at,omitempty"`
	RoomID         string      `json:"room_id,omitempty"`
	RoomPassword   string      `json:"room_password,omitempty"`
	Players        []PlayerDTO `json:"players,omitempty"`
}
