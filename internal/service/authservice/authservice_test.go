package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTutorRepo, *pg.MockTXManager, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	tutorRepo := NewMockTutorRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(userRepo, tutorRepo, txManager, hashService, jwtService)
	defer ctrl.Finish()
	return service, userRepo, tutorRepo, txManager, hashService, jwtService
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestRegister(t *testing.T) {
	service, userRepo, tutorRepo, txManager, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		input         RegisterInput
		prepareMock   func()
		expectedRole  string
		expectedError error
	}{
		{
			name:  "Student registered successfully",
			input: RegisterInput{Name: "Sara", Email: "sara@example.com", Password: "secret123"},
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "sara@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					},
				)
			},
			expectedRole: domain.RoleStudent,
		},
		{
			name: "Tutor registered with profile",
			input: RegisterInput{
				Name: "Omar", Email: "omar@example.com", Password: "secret123", Role: domain.RoleTutor,
				University: "Cairo University", Major: "Math", Year: "الثالثة",
				TeachingSubjects: []string{"Calculus"}, HourlyRate: 100,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "omar@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 2
						return user, nil
					},
				)
				tutorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tutor *domain.Tutor) (*domain.Tutor, error) {
						assert.Equal(t, 2, tutor.UserID)
						assert.Equal(t, 100.0, tutor.HourlyRate)
						return tutor, nil
					},
				)
			},
			expectedRole: domain.RoleTutor,
		},
		{
			name:  "Email already taken",
			input: RegisterInput{Name: "Sara", Email: "sara@example.com", Password: "secret123"},
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "sara@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:  "Tutor fields missing",
			input: RegisterInput{Name: "Omar", Email: "omar2@example.com", Password: "secret123", Role: domain.RoleTutor},
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "omar2@example.com").Return(nil, nil)
			},
			expectedError: ErrTutorFieldsMissing,
		},
		{
			name:  "Create fails inside transaction",
			input: RegisterInput{Name: "Sara", Email: "sara2@example.com", Password: "secret123"},
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "sara2@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret123").Return("hashed", nil)
				passthroughTx(txManager)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, _, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "sara@example.com",
			password: "secret123",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "sara@example.com").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret123").Return(true)
			},
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			email:    "sara@example.com",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "sara@example.com").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	service, userRepo, _, _, _, _ := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Sara"}, nil)
		user, err := service.GetMe(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Sara", user.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)
		user, err := service.GetMe(context.Background(), 404)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestChangePassword(t *testing.T) {
	service, userRepo, _, _, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Password changed",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PasswordHash: "old-hash"}, nil)
				hashService.EXPECT().ComparePassword("old-hash", "oldpass").Return(true)
				hashService.EXPECT().HashPassword("newpass").Return("new-hash", nil)
				userRepo.EXPECT().UpdatePassword(gomock.Any(), 1, "new-hash").Return(nil)
			},
		},
		{
			name: "Wrong current password",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, PasswordHash: "old-hash"}, nil)
				hashService.EXPECT().ComparePassword("old-hash", "oldpass").Return(false)
			},
			expectedError: ErrWrongPassword,
		},
		{
			name: "User not found",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ChangePassword(context.Background(), 1, "oldpass", "newpass")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, _, jwtService := NewMock(t)

	t.Run("Token generated", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, domain.RoleStudent, gomock.Any()).Return("token", nil)
		token, err := service.GenerateToken(1, domain.RoleStudent)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Generation error", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, domain.RoleStudent, gomock.Any()).Return("", errors.New("sign error"))
		token, err := service.GenerateToken(1, domain.RoleStudent)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
