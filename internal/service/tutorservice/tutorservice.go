package tutorservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/config"
	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

type TutorRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Tutor, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Tutor, error)
	Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error)
	Update(ctx context.Context, tutor *domain.Tutor) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorDetail, error)
}

type UserRepo interface {
	UpdateRole(ctx context.Context, userID int, role string) error
}

var (
	ErrTutorNotFound  = errors.New("tutor not found")
	ErrTutorExists    = errors.New("tutor profile already exists")
	ErrNotAllowed     = errors.New("not authorized to update this tutor profile")
	ErrRateOutOfRange = errors.New("hourly rate is outside the allowed range")
)

type TutorInput struct {
	University       string
	Major            string
	Year             string
	TeachingSubjects []string
	HourlyRate       float64
	TutorBio         *string
	Availability     []string
}

type Service struct {
	tutorRepo TutorRepo
	userRepo  UserRepo
	txManager pg.TXManager
	cfg       *config.Config
}

func New(tutorRepo TutorRepo, userRepo UserRepo, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		tutorRepo: tutorRepo,
		userRepo:  userRepo,
		txManager: txManager,
		cfg:       cfg,
	}
}

func (s *Service) List(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorDetail, error) {
	tutors, err := s.tutorRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list tutors", zap.Error(err))
		return nil, err
	}
	return tutors, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Tutor, error) {
	tutor, err := s.tutorRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get tutor", zap.Error(err))
		return nil, err
	}
	if tutor == nil {
		return nil, ErrTutorNotFound
	}
	return tutor, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID int) (*domain.Tutor, error) {
	tutor, err := s.tutorRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get tutor by user id", zap.Error(err))
		return nil, err
	}
	if tutor == nil {
		return nil, ErrTutorNotFound
	}
	return tutor, nil
}

// Create opens a tutor profile for an existing user and promotes the user's
// role in the same transaction.
func (s *Service) Create(ctx context.Context, userID int, in TutorInput) (*domain.Tutor, error) {
	existing, err := s.tutorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTutorExists
	}
	if in.HourlyRate < s.cfg.HourlyRateMin || in.HourlyRate > s.cfg.HourlyRateMax {
		return nil, ErrRateOutOfRange
	}

	tutor := &domain.Tutor{
		UserID:           userID,
		University:       in.University,
		Major:            in.Major,
		Year:             in.Year,
		TeachingSubjects: in.TeachingSubjects,
		HourlyRate:       in.HourlyRate,
		Availability:     in.Availability,
	}
	if in.TutorBio != nil {
		tutor.TutorBio = *in.TutorBio
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.UpdateRole(ctx, userID, domain.RoleTutor); err != nil {
			return err
		}
		_, err := s.tutorRepo.Create(ctx, tutor)
		return err
	})
	if err != nil {
		zap.L().Error("failed to create tutor profile", zap.Error(err))
		return nil, err
	}

	zap.L().Info("tutor profile created", zap.Int("user_id", userID))
	return tutor, nil
}

func (s *Service) Update(ctx context.Context, identity auth.Identity, id int, in TutorInput) (*domain.Tutor, error) {
	tutor, err := s.tutorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, ErrTutorNotFound
	}
	if tutor.UserID != identity.UserID && identity.Role != domain.RoleAdmin {
		return nil, ErrNotAllowed
	}

	if in.University != "" {
		tutor.University = in.University
	}
	if in.Major != "" {
		tutor.Major = in.Major
	}
	if in.Year != "" {
		tutor.Year = in.Year
	}
	if in.TeachingSubjects != nil {
		tutor.TeachingSubjects = in.TeachingSubjects
	}
	if in.HourlyRate != 0 {
		if in.HourlyRate < s.cfg.HourlyRateMin || in.HourlyRate > s.cfg.HourlyRateMax {
			return nil, ErrRateOutOfRange
		}
		tutor.HourlyRate = in.HourlyRate
	}
	if in.TutorBio != nil {
		tutor.TutorBio = *in.TutorBio
	}
	if in.Availability != nil {
		tutor.Availability = in.Availability
	}

	if err := s.tutorRepo.Update(ctx, tutor); err != nil {
		zap.L().Error("failed to update tutor", zap.Error(err))
		return nil, err
	}
	return tutor, nil
}

// Delete removes the profile and reverts the owner back to a student.
func (s *Service) Delete(ctx context.Context, id int) error {
	tutor, err := s.tutorRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if tutor == nil {
		return ErrTutorNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.UpdateRole(ctx, tutor.UserID, domain.RoleStudent); err != nil {
			return err
		}
		return s.tutorRepo.Delete(ctx, id)
	})
	if err != nil {
		zap.L().Error("failed to delete tutor profile", zap.Error(err))
		return err
	}
	return nil
}
