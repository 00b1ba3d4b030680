package dto

import (
	"errors"

	"github.com/battlearena/battlearena/pkg/validate"
)

type RegisterRequestDTO struct {
	Phone    string `json:"phone" example:"+919876543210"`
	Username string `json:"username" example:"player1"`
	GameName string `json:"game_name" example:"SniperX"`
	Password string `json:"password" example:"secret-pass"`
}

func (r *RegisterRequestDTO) Validate() error {
	if !validate.IsPhone(r.Phone) {
		return errors.New("invalid phone number")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type LoginRequestDTO struct {
	Phone    string `json:"phone" example:"+919876543210"`
	Password string `json:"password" example:"secret-pass"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}
