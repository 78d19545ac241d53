package domain

import "time"

const (
	RoleStudent string = "student"
	RoleTutor   string = "tutor"
	RoleAdmin   string = "admin"
)

const (
	// BookingPending waiting for the tutor to confirm;
	BookingPending string = "pending"
	// BookingConfirmed accepted by the tutor;
	BookingConfirmed string = "confirmed"
	// BookingCompleted session held, earnings credited;
	BookingCompleted string = "completed"
	// BookingCancelled cancelled by a participant or an admin;
	BookingCancelled string = "cancelled"
	// BookingRejected declined by the tutor;
	BookingRejected string = "rejected"
)

const (
	PaymentStatusPending  string = "pending"
	PaymentStatusPaid     string = "paid"
	PaymentStatusRefunded string = "refunded"
)

const (
	PaymentTypeBooking    string = "booking"
	PaymentTypeRefund     string = "refund"
	PaymentTypeDeposit    string = "deposit"
	PaymentTypeWithdrawal string = "withdrawal"
)

const (
	TxnPending   string = "pending"
	TxnCompleted string = "completed"
	TxnFailed    string = "failed"
	TxnCancelled string = "cancelled"
	TxnRejected  string = "rejected"
)

// MethodWallet settles instantly; every other method waits for admin review.
const MethodWallet string = "wallet"

type User struct {
	ID                int       `db:"id"`
	Name              string    `db:"name"`
	Email             string    `db:"email"`
	PasswordHash      string    `db:"password_hash"`
	Phone             string    `db:"phone"`
	Role              string    `db:"role"`
	Avatar            string    `db:"avatar"`
	Bio               string    `db:"bio"`
	Track             string    `db:"track"`
	Interests         []string  `db:"interests"`
	Balance           float64   `db:"balance"`
	CompletedSessions int       `db:"completed_sessions"`
	TotalSpent        float64   `db:"total_spent"`
	CreatedAt         time.Time `db:"created_at"`
}

type Tutor struct {
	ID                int       `db:"id"`
	UserID            int       `db:"user_id"`
	University        string    `db:"university"`
	Major             string    `db:"major"`
	Year              string    `db:"year"`
	TeachingSubjects  []string  `db:"teaching_subjects"`
	HourlyRate        float64   `db:"hourly_rate"`
	TutorBio          string    `db:"tutor_bio"`
	Availability      []string  `db:"availability"`
	Rating            float64   `db:"rating"`
	TotalRatings      int       `db:"total_ratings"`
	TotalEarnings     float64   `db:"total_earnings"`
	CompletedSessions int       `db:"completed_sessions"`
	IsVerified        bool      `db:"is_verified"`
	CreatedAt         time.Time `db:"created_at"`
}

type Booking struct {
	ID                 int        `db:"id"`
	StudentID          int        `db:"student_id"`
	TutorID            int        `db:"tutor_id"`
	Subject            string     `db:"subject"`
	SessionDate        time.Time  `db:"session_date"`
	Duration           int        `db:"duration"`
	HourlyRate         float64    `db:"hourly_rate"`
	TotalPrice         float64    `db:"total_price"`
	Status             string     `db:"status"`
	SessionType        string     `db:"session_type"`
	Location           string     `db:"location"`
	Notes              string     `db:"notes"`
	PaymentStatus      string     `db:"payment_status"`
	CancelledBy        *int       `db:"cancelled_by"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason string     `db:"cancellation_reason"`
	Rating             *int       `db:"rating"`
	Review             string     `db:"review"`
	CreatedAt          time.Time  `db:"created_at"`
}

type Payment struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	BookingID        *int      `db:"booking_id"`
	Type             string    `db:"type"`
	Amount           float64   `db:"amount"`
	Method           string    `db:"method"`
	Status           string    `db:"status"`
	TransactionID    string    `db:"transaction_id"`
	TransactionProof string    `db:"transaction_proof"`
	RejectionReason  string    `db:"rejection_reason"`
	Description      string    `db:"description"`
	CreatedAt        time.Time `db:"created_at"`
}
