package paymentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

type PaymentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int, status, rejectionReason string) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentDetail, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	AdjustBalance(ctx context.Context, userID int, delta float64) error
	DebitBalance(ctx context.Context, userID int, amount float64) (bool, error)
}

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotPending          = errors.New("only pending payments can be settled")
	ErrNotAllowed          = errors.New("not authorized to access this payment")
)

type CreateInput struct {
	Type             string
	Amount           float64
	Method           string
	Description      string
	TransactionProof string
	BookingID        *int
}

type Service struct {
	paymentRepo PaymentRepo
	userRepo    UserRepo
	txManager   pg.TXManager
}

func New(paymentRepo PaymentRepo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		txManager:   txManager,
	}
}

// Create records a deposit, withdrawal or booking payment. Wallet payments
// settle instantly inside one transaction with the balance change; any other
// method leaves the payment pending for admin review and touches no balance.
func (s *Service) Create(ctx context.Context, userID int, in CreateInput) (*domain.Payment, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if in.Type == domain.PaymentTypeWithdrawal && user.Balance < in.Amount {
		return nil, ErrInsufficientBalance
	}

	status := domain.TxnPending
	if in.Method == domain.MethodWallet {
		status = domain.TxnCompleted
	}

	description := in.Description
	if description == "" {
		description = fmt.Sprintf("%s via %s", in.Type, in.Method)
	}

	payment := &domain.Payment{
		UserID:           userID,
		BookingID:        in.BookingID,
		Type:             in.Type,
		Amount:           in.Amount,
		Method:           in.Method,
		Status:           status,
		TransactionID:    "TXN-" + uuid.NewString(),
		TransactionProof: in.TransactionProof,
		Description:      description,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if status == domain.TxnCompleted {
			switch in.Type {
			case domain.PaymentTypeDeposit:
				if err := s.userRepo.AdjustBalance(ctx, userID, in.Amount); err != nil {
					return err
				}
			case domain.PaymentTypeWithdrawal, domain.PaymentTypeBooking:
				ok, err := s.userRepo.DebitBalance(ctx, userID, in.Amount)
				if err != nil {
					return err
				}
				if !ok {
					return ErrInsufficientBalance
				}
			}
		}
		_, err := s.paymentRepo.Create(ctx, payment)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't create payment", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("payment created",
		zap.Int("payment_id", payment.ID),
		zap.String("type", payment.Type),
		zap.String("status", payment.Status),
	)
	return payment, nil
}

// Approve settles a pending payment and applies its balance effect. A
// payment that is no longer pending cannot be approved again, so a repeated
// call never double-credits.
func (s *Service) Approve(ctx context.Context, id int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != domain.TxnPending {
		return nil, ErrNotPending
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.UpdateStatus(ctx, id, domain.TxnCompleted, ""); err != nil {
			return err
		}
		switch payment.Type {
		case domain.PaymentTypeDeposit:
			return s.userRepo.AdjustBalance(ctx, payment.UserID, payment.Amount)
		case domain.PaymentTypeWithdrawal:
			// sufficiency was checked at creation, not re-checked here
			return s.userRepo.AdjustBalance(ctx, payment.UserID, -payment.Amount)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't approve payment", zap.Error(err))
		return nil, err
	}

	payment.Status = domain.TxnCompleted
	zap.L().Info("payment approved", zap.Int("payment_id", id), zap.String("type", payment.Type))
	return payment, nil
}

func (s *Service) Reject(ctx context.Context, id int, reason string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != domain.TxnPending {
		return nil, ErrNotPending
	}

	if reason == "" {
		reason = "No reason provided"
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, domain.TxnRejected, reason); err != nil {
		zap.L().Error("can't reject payment", zap.Error(err))
		return nil, err
	}

	payment.Status = domain.TxnRejected
	payment.RejectionReason = reason
	return payment, nil
}

// UpdateStatus is the raw admin override; it never touches balances.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if err := s.paymentRepo.UpdateStatus(ctx, id, status, payment.RejectionReason); err != nil {
		zap.L().Error("can't update payment status", zap.Error(err))
		return nil, err
	}
	payment.Status = status
	return payment, nil
}

func (s *Service) Get(ctx context.Context, identity auth.Identity, id int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get payment", zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if identity.Role != domain.RoleAdmin && identity.UserID != payment.UserID {
		return nil, ErrNotAllowed
	}
	return payment, nil
}

// List scopes non-admin callers to their own payments.
func (s *Service) List(ctx context.Context, identity auth.Identity, filter domain.PaymentFilter) ([]domain.PaymentDetail, error) {
	if identity.Role != domain.RoleAdmin {
		filter.UserID = &identity.UserID
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}
	return s.paymentRepo.Delete(ctx, id)
}
