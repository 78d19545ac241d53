package bookingservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

type BookingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Booking, error)
	FindDetailByID(ctx context.Context, id int) (*domain.BookingDetail, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.BookingDetail, error)
}

type UserRepo interface {
	AdjustBalance(ctx context.Context, userID int, delta float64) error
	DebitBalance(ctx context.Context, userID int, amount float64) (bool, error)
	AddSessionStats(ctx context.Context, userID int, spent float64) error
}

type TutorRepo interface {
	FindByUserID(ctx context.Context, userID int) (*domain.Tutor, error)
	ApplyRating(ctx context.Context, tutorUserID, value int) error
	AddSessionStats(ctx context.Context, tutorUserID int, earnings float64) error
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTutorNotFound       = errors.New("tutor not found")
	ErrInsufficientBalance = errors.New("insufficient balance, please add funds to your wallet")
	ErrStudentCancelOnly   = errors.New("students can only cancel bookings")
	ErrTutorTransition     = errors.New("invalid status update for tutor")
	ErrNotAllowed          = errors.New("not authorized to access this booking")
	ErrRatingNotCompleted  = errors.New("can only rate completed sessions")
)

type CreateInput struct {
	TutorID     int
	Subject     string
	SessionDate time.Time
	Duration    int
	SessionType string
	Location    string
	Notes       string
}

type UpdateInput struct {
	Status             string
	CancellationReason string
	Rating             *int
	Review             string
}

type Service struct {
	bookingRepo BookingRepo
	userRepo    UserRepo
	tutorRepo   TutorRepo
	paymentRepo PaymentRepo
	txManager   pg.TXManager
}

func New(bookingRepo BookingRepo, userRepo UserRepo, tutorRepo TutorRepo, paymentRepo PaymentRepo, txManager pg.TXManager) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		tutorRepo:   tutorRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

// Create books a session and settles it from the student's wallet. The
// conditional debit, the booking row and the payment row share one
// transaction: either the student is charged and both records exist, or
// nothing happened.
func (s *Service) Create(ctx context.Context, studentID int, in CreateInput) (*domain.Booking, error) {
	tutor, err := s.tutorRepo.FindByUserID(ctx, in.TutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, ErrTutorNotFound
	}

	totalPrice := tutor.HourlyRate * float64(in.Duration)

	sessionType := in.SessionType
	if sessionType == "" {
		sessionType = "online"
	}

	booking := &domain.Booking{
		StudentID:   studentID,
		TutorID:     in.TutorID,
		Subject:     in.Subject,
		SessionDate: in.SessionDate,
		Duration:    in.Duration,
		HourlyRate:  tutor.HourlyRate,
		TotalPrice:  totalPrice,
		Status:      domain.BookingPending,
		SessionType: sessionType,
		Location:    in.Location,
		Notes:       in.Notes,
		// the wallet debit settles instantly, so the booking is paid from birth
		PaymentStatus: domain.PaymentStatusPaid,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.userRepo.DebitBalance(ctx, studentID, totalPrice)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}
		if _, err := s.bookingRepo.Create(ctx, booking); err != nil {
			return err
		}
		_, err = s.paymentRepo.Create(ctx, &domain.Payment{
			UserID:        studentID,
			BookingID:     &booking.ID,
			Type:          domain.PaymentTypeBooking,
			Amount:        totalPrice,
			Method:        domain.MethodWallet,
			Status:        domain.TxnCompleted,
			TransactionID: newTransactionID(),
			Description:   fmt.Sprintf("Payment for booking with tutor %d", in.TutorID),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't create booking", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("booking created",
		zap.Int("booking_id", booking.ID),
		zap.Int("student_id", studentID),
		zap.Float64("total_price", totalPrice),
	)
	return booking, nil
}

// Update drives the status transitions and the rating flow. Permissions
// depend on the caller's relationship to the booking: the student may only
// cancel, the tutor may confirm, complete or reject, an admin may do
// anything, anyone else is rejected before any write. All side effects of a
// transition land in one transaction.
func (s *Service) Update(ctx context.Context, identity auth.Identity, id int, in UpdateInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	switch {
	case identity.UserID == booking.StudentID:
		if in.Status != "" && in.Status != domain.BookingCancelled {
			return nil, ErrStudentCancelOnly
		}
	case identity.UserID == booking.TutorID:
		if in.Status != "" && in.Status != domain.BookingConfirmed && in.Status != domain.BookingCompleted && in.Status != domain.BookingRejected {
			return nil, ErrTutorTransition
		}
	default:
		if identity.Role != domain.RoleAdmin {
			return nil, ErrNotAllowed
		}
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if in.Status != "" {
			if in.Status == domain.BookingCancelled && booking.Status != domain.BookingCancelled {
				if err := s.cancel(ctx, booking, identity.UserID, in.CancellationReason); err != nil {
					return err
				}
			}
			if in.Status == domain.BookingCompleted && booking.Status != domain.BookingCompleted {
				if err := s.complete(ctx, booking); err != nil {
					return err
				}
			}
			booking.Status = in.Status
		}

		// only the student rates, and only once the session is completed
		if (in.Rating != nil || in.Review != "") && identity.UserID == booking.StudentID {
			if booking.Status != domain.BookingCompleted {
				return ErrRatingNotCompleted
			}
			if in.Rating != nil {
				booking.Rating = in.Rating
				if err := s.tutorRepo.ApplyRating(ctx, booking.TutorID, *in.Rating); err != nil {
					return err
				}
			}
			if in.Review != "" {
				booking.Review = in.Review
			}
		}

		return s.bookingRepo.Update(ctx, booking)
	})
	if err != nil {
		if !errors.Is(err, ErrRatingNotCompleted) {
			zap.L().Error("can't update booking", zap.Error(err))
		}
		return nil, err
	}

	return booking, nil
}

// cancel stamps the cancellation metadata and refunds the student when the
// booking was already paid for.
func (s *Service) cancel(ctx context.Context, booking *domain.Booking, cancelledBy int, reason string) error {
	now := time.Now()
	booking.CancelledBy = &cancelledBy
	booking.CancelledAt = &now
	booking.CancellationReason = reason

	if booking.PaymentStatus != domain.PaymentStatusPaid {
		return nil
	}

	if err := s.userRepo.AdjustBalance(ctx, booking.StudentID, booking.TotalPrice); err != nil {
		return err
	}
	booking.PaymentStatus = domain.PaymentStatusRefunded

	_, err := s.paymentRepo.Create(ctx, &domain.Payment{
		UserID:        booking.StudentID,
		BookingID:     &booking.ID,
		Type:          domain.PaymentTypeRefund,
		Amount:        booking.TotalPrice,
		Method:        domain.MethodWallet,
		Status:        domain.TxnCompleted,
		TransactionID: newTransactionID(),
		Description:   "Refund for cancelled booking",
	})
	return err
}

// complete moves the session price into the tutor's wallet and bumps the
// session counters on both sides. Earnings move only through the user
// balance; no payment record is written here.
func (s *Service) complete(ctx context.Context, booking *domain.Booking) error {
	if err := s.userRepo.AddSessionStats(ctx, booking.StudentID, booking.TotalPrice); err != nil {
		return err
	}
	if err := s.tutorRepo.AddSessionStats(ctx, booking.TutorID, booking.TotalPrice); err != nil {
		return err
	}
	return s.userRepo.AdjustBalance(ctx, booking.TutorID, booking.TotalPrice)
}

func (s *Service) Get(ctx context.Context, identity auth.Identity, id int) (*domain.BookingDetail, error) {
	booking, err := s.bookingRepo.FindDetailByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if identity.Role != domain.RoleAdmin && identity.UserID != booking.StudentID && identity.UserID != booking.TutorID {
		return nil, ErrNotAllowed
	}
	return booking, nil
}

// List scopes the result to the caller: students and tutors see their own
// bookings, admins see everything and may filter by participant.
func (s *Service) List(ctx context.Context, identity auth.Identity, filter domain.BookingFilter) ([]domain.BookingDetail, error) {
	if identity.Role != domain.RoleAdmin {
		filter.StudentID = nil
		filter.TutorID = nil
		if identity.Role == domain.RoleTutor {
			filter.TutorID = &identity.UserID
		} else {
			filter.StudentID = &identity.UserID
		}
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("can't list bookings", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return s.bookingRepo.Delete(ctx, id)
}

func newTransactionID() string {
	return "TXN-" + uuid.NewString()
}
