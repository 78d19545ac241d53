package dto

import (
	"time"

	"github.com/thanawiyapro/tutormarket/internal/domain"
)

type CreateBookingRequestDTO struct {
	TutorID     int       `json:"tutorId" validate:"required"`
	Subject     string    `json:"subject" validate:"required,max=255"`
	SessionDate time.Time `json:"sessionDate" validate:"required"`
	Duration    int       `json:"duration" validate:"required,oneof=1 2 3"`
	SessionType string    `json:"sessionType" validate:"omitempty,oneof=online in-person"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes" validate:"omitempty,max=500"`
}

type UpdateBookingRequestDTO struct {
	Status             string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled rejected"`
	CancellationReason string `json:"cancellationReason"`
	Rating             *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Review             string `json:"review" validate:"omitempty,max=500"`
}

type BookingDTO struct {
	ID                 int           `json:"id"`
	StudentID          int           `json:"studentId"`
	TutorID            int           `json:"tutorId"`
	Subject            string        `json:"subject"`
	SessionDate        time.Time     `json:"sessionDate"`
	Duration           int           `json:"duration"`
	HourlyRate         float64       `json:"hourlyRate"`
	TotalPrice         float64       `json:"totalPrice"`
	Status             string        `json:"status"`
	SessionType        string        `json:"sessionType"`
	Location           string        `json:"location,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	PaymentStatus      string        `json:"paymentStatus"`
	CancelledBy        *int          `json:"cancelledBy,omitempty"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	Rating             *int          `json:"rating,omitempty"`
	Review             string        `json:"review,omitempty"`
	Student            *UserBriefDTO `json:"student,omitempty"`
	Tutor              *UserBriefDTO `json:"tutor,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}

func NewBookingDTO(b *domain.Booking) BookingDTO {
	return BookingDTO{
		ID:                 b.ID,
		StudentID:          b.StudentID,
		TutorID:            b.TutorID,
		Subject:            b.Subject,
		SessionDate:        b.SessionDate,
		Duration:           b.Duration,
		HourlyRate:         b.HourlyRate,
		TotalPrice:         b.TotalPrice,
		Status:             b.Status,
		SessionType:        b.SessionType,
		Location:           b.Location,
		Notes:              b.Notes,
		PaymentStatus:      b.PaymentStatus,
		CancelledBy:        b.CancelledBy,
		CancelledAt:        b.CancelledAt,
		CancellationReason: b.CancellationReason,
		Rating:             b.Rating,
		Review:             b.Review,
		CreatedAt:          b.CreatedAt,
	}
}

func NewBookingDetailDTO(b *domain.BookingDetail) BookingDTO {
	out := NewBookingDTO(&b.Booking)
	student := NewUserBriefDTO(b.Student)
	tutor := NewUserBriefDTO(b.Tutor)
	out.Student = &student
	out.Tutor = &tutor
	return out
}
