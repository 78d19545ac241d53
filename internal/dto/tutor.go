package dto

import (
	"time"

	"github.com/thanawiyapro/tutormarket/internal/domain"
)

type TutorDTO struct {
	ID                int           `json:"id"`
	UserID            int           `json:"userId"`
	University        string        `json:"university"`
	Major             string        `json:"major"`
	Year              string        `json:"year"`
	TeachingSubjects  []string      `json:"teachingSubjects"`
	HourlyRate        float64       `json:"hourlyRate"`
	TutorBio          string        `json:"tutorBio,omitempty"`
	Availability      []string      `json:"availability,omitempty"`
	Rating            float64       `json:"rating"`
	TotalRatings      int           `json:"totalRatings"`
	TotalEarnings     float64       `json:"totalEarnings"`
	CompletedSessions int           `json:"completedSessions"`
	IsVerified        bool          `json:"isVerified"`
	User              *UserBriefDTO `json:"user,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}

func NewTutorDTO(t *domain.Tutor) TutorDTO {
	return TutorDTO{
		ID:                t.ID,
		UserID:            t.UserID,
		University:        t.University,
		Major:             t.Major,
		Year:              t.Year,
		TeachingSubjects:  t.TeachingSubjects,
		HourlyRate:        t.HourlyRate,
		TutorBio:          t.TutorBio,
		Availability:      t.Availability,
		Rating:            t.Rating,
		TotalRatings:      t.TotalRatings,
		TotalEarnings:     t.TotalEarnings,
		CompletedSessions: t.CompletedSessions,
		IsVerified:        t.IsVerified,
		CreatedAt:         t.CreatedAt,
	}
}

func NewTutorDetailDTO(t *domain.TutorDetail) TutorDTO {
	out := NewTutorDTO(&t.Tutor)
	user := NewUserBriefDTO(t.User)
	out.User = &user
	return out
}

type CreateTutorRequestDTO struct {
	University       string   `json:"university" validate:"required,max=255"`
	Major            string   `json:"major" validate:"required,max=255"`
	Year             string   `json:"year" validate:"required,oneof=الأولى الثانية الثالثة الرابعة خريج"`
	TeachingSubjects []string `json:"teachingSubjects" validate:"required,min=1"`
	HourlyRate       float64  `json:"hourlyRate" validate:"required,gt=0"`
	TutorBio         string   `json:"tutorBio" validate:"omitempty,max=1000"`
	Availability     []string `json:"availability"`
}

type UpdateTutorRequestDTO struct {
	University       string   `json:"university"`
	Major            string   `json:"major"`
	Year             string   `json:"year" validate:"omitempty,oneof=الأولى الثانية الثالثة الرابعة خريج"`
	TeachingSubjects []string `json:"teachingSubjects"`
	HourlyRate       float64  `json:"hourlyRate" validate:"omitempty,gt=0"`
	TutorBio         *string  `json:"tutorBio"`
	Availability     []string `json:"availability"`
}
