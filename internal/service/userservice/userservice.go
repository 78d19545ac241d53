package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
	AdjustBalance(ctx context.Context, userID int, delta float64) error
	DebitBalance(ctx context.Context, userID int, amount float64) (bool, error)
	AddFavorite(ctx context.Context, userID, tutorID int) (bool, error)
	RemoveFavorite(ctx context.Context, userID, tutorID int) error
	GetFavorites(ctx context.Context, userID int) ([]int, error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrNotAllowed          = errors.New("not authorized to update this user")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyFavorite     = errors.New("tutor already in favorites")
)

type UpdateInput struct {
	Name      string
	Phone     string
	Bio       string
	Track     string
	Interests []string
	Avatar    string
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies non-empty fields; a record may be mutated by its owner or an admin.
func (s *Service) Update(ctx context.Context, identity auth.Identity, id int, in UpdateInput) (*domain.User, error) {
	if identity.UserID != id && identity.Role != domain.RoleAdmin {
		return nil, ErrNotAllowed
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Track != "" {
		user.Track = in.Track
	}
	if in.Interests != nil {
		user.Interests = in.Interests
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		zap.L().Error("failed to update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, id)
}

// UpdateBalance is the direct add/subtract endpoint; subtract never pushes
// the balance below zero.
func (s *Service) UpdateBalance(ctx context.Context, identity auth.Identity, id int, amount float64, operation string) (*domain.User, error) {
	if identity.UserID != id && identity.Role != domain.RoleAdmin {
		return nil, ErrNotAllowed
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	switch operation {
	case "add":
		if err := s.userRepo.AdjustBalance(ctx, id, amount); err != nil {
			zap.L().Error("failed to credit balance", zap.Error(err))
			return nil, err
		}
	case "subtract":
		ok, err := s.userRepo.DebitBalance(ctx, id, amount)
		if err != nil {
			zap.L().Error("failed to debit balance", zap.Error(err))
			return nil, err
		}
		if !ok {
			return nil, ErrInsufficientBalance
		}
	}

	return s.userRepo.FindByID(ctx, id)
}

func (s *Service) AddFavorite(ctx context.Context, identity auth.Identity, id, tutorID int) (*domain.User, error) {
	if identity.UserID != id {
		return nil, ErrNotAllowed
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	added, err := s.userRepo.AddFavorite(ctx, id, tutorID)
	if err != nil {
		zap.L().Error("failed to add favorite", zap.Error(err))
		return nil, err
	}
	if !added {
		return nil, ErrAlreadyFavorite
	}
	return user, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, identity auth.Identity, id, tutorID int) (*domain.User, error) {
	if identity.UserID != id {
		return nil, ErrNotAllowed
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := s.userRepo.RemoveFavorite(ctx, id, tutorID); err != nil {
		zap.L().Error("failed to remove favorite", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) GetFavorites(ctx context.Context, userID int) ([]int, error) {
	return s.userRepo.GetFavorites(ctx, userID)
}
