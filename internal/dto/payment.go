package dto

import (
	"time"

	"github.com/thanawiyapro/tutormarket/internal/domain"
)

type CreatePaymentRequestDTO struct {
	Type             string  `json:"type" validate:"required,oneof=deposit withdrawal booking"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod    string  `json:"paymentMethod" validate:"required,oneof=wallet instapay vodafone bank fawry"`
	Description      string  `json:"description"`
	TransactionProof string  `json:"transactionProof"`
	BookingID        *int    `json:"bookingId"`
}

type UpdatePaymentRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed cancelled"`
}

type RejectPaymentRequestDTO struct {
	Reason string `json:"reason"`
}

type PaymentDTO struct {
	ID               int           `json:"id"`
	UserID           int           `json:"userId"`
	BookingID        *int          `json:"bookingId,omitempty"`
	Type             string        `json:"type"`
	Amount           float64       `json:"amount"`
	Method           string        `json:"method"`
	Status           string        `json:"status"`
	TransactionID    string        `json:"transactionId,omitempty"`
	TransactionProof string        `json:"transactionProof,omitempty"`
	RejectionReason  string        `json:"rejectionReason,omitempty"`
	Description      string        `json:"description,omitempty"`
	User             *UserBriefDTO `json:"user,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

func NewPaymentDTO(p *domain.Payment) PaymentDTO {
	return PaymentDTO{
		ID:               p.ID,
		UserID:           p.UserID,
		BookingID:        p.BookingID,
		Type:             p.Type,
		Amount:           p.Amount,
		Method:           p.Method,
		Status:           p.Status,
		TransactionID:    p.TransactionID,
		TransactionProof: p.TransactionProof,
		RejectionReason:  p.RejectionReason,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt,
	}
}

func NewPaymentDetailDTO(p *domain.PaymentDetail) PaymentDTO {
	out := NewPaymentDTO(&p.Payment)
	user := NewUserBriefDTO(p.User)
	out.User = &user
	return out
}
