package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

type TutorRepo interface {
	Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error)
}

var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTutorFieldsMissing = errors.New("tutor registration requires university, major, year, subjects, and hourly rate")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
)

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	Role      string
	Track     string
	Interests []string

	University       string
	Major            string
	Year             string
	TeachingSubjects []string
	HourlyRate       float64
	TutorBio         string
}

type Service struct {
	userRepo    UserRepo
	tutorRepo   TutorRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, tutorRepo TutorRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		tutorRepo:   tutorRepo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the user, and for tutors the profile with it. Both writes
// share one transaction, so a rejected tutor profile never leaves behind a
// half-created user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", in.Email))
		return nil, ErrEmailTaken
	}

	role := in.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if role == domain.RoleTutor {
		if in.University == "" || in.Major == "" || in.Year == "" || len(in.TeachingSubjects) == 0 || in.HourlyRate == 0 {
			return nil, ErrTutorFieldsMissing
		}
	}

	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashedPassword,
		Phone:        in.Phone,
		Role:         role,
		Track:        in.Track,
		Interests:    in.Interests,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		if role != domain.RoleTutor {
			return nil
		}
		_, err := s.tutorRepo.Create(ctx, &domain.Tutor{
			UserID:           user.ID,
			University:       in.University,
			Major:            in.Major,
			Year:             in.Year,
			TeachingSubjects: in.TeachingSubjects,
			HourlyRate:       in.HourlyRate,
			TutorBio:         in.TutorBio,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", in.Email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GetMe(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load current user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load user for password change", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, currentPassword); !ok {
		return ErrWrongPassword
	}
	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hashedPassword)
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
