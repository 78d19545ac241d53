package dto

import (
	"time"

	"github.com/thanawiyapro/tutormarket/internal/domain"
)

type UserDTO struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	Role              string    `json:"role"`
	Avatar            string    `json:"avatar,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Track             string    `json:"track,omitempty"`
	Interests         []string  `json:"interests,omitempty"`
	Balance           float64   `json:"balance"`
	CompletedSessions int       `json:"completedSessions"`
	TotalSpent        float64   `json:"totalSpent"`
	FavoriteTutors    []int     `json:"favoriteTutors,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Phone:             u.Phone,
		Role:              u.Role,
		Avatar:            u.Avatar,
		Bio:               u.Bio,
		Track:             u.Track,
		Interests:         u.Interests,
		Balance:           u.Balance,
		CompletedSessions: u.CompletedSessions,
		TotalSpent:        u.TotalSpent,
		CreatedAt:         u.CreatedAt,
	}
}

type UserBriefDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func NewUserBriefDTO(u domain.UserBrief) UserBriefDTO {
	return UserBriefDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
	}
}

// Empty fields keep their stored value, mirroring the partial-update rule.
type UpdateUserRequestDTO struct {
	Name      string   `json:"name" validate:"omitempty,max=100"`
	Phone     string   `json:"phone" validate:"omitempty,max=30"`
	Bio       string   `json:"bio"`
	Track     string   `json:"track"`
	Interests []string `json:"interests"`
	Avatar    string   `json:"avatar"`
}

type UpdateBalanceRequestDTO struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Operation string  `json:"operation" validate:"required,oneof=add subtract"`
}
