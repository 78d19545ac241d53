package domain

import "time"

// UserBrief is the subset of user fields embedded into list rows, standing
// in for the reference joins the API exposes.
type UserBrief struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	Avatar string `db:"avatar"`
}

type TutorDetail struct {
	Tutor
	User UserBrief
}

type BookingDetail struct {
	Booking
	Student UserBrief
	Tutor   UserBrief
}

type PaymentDetail struct {
	Payment
	User UserBrief
}

type TutorFilter struct {
	Subject    string
	MinRate    *float64
	MaxRate    *float64
	MinRating  *float64
	University string
	Year       string
	Search     string
}

type BookingFilter struct {
	StudentID *int
	TutorID   *int
	Status    string
	FromDate  *time.Time
	ToDate    *time.Time
}

type PaymentFilter struct {
	UserID *int
	Type   string
	Status string
}

type UserFilter struct {
	Role   string
	Search string
}
