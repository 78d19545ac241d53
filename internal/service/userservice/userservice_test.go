package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	service := New(userRepo)
	defer ctrl.Finish()
	return service, userRepo
}

func TestListUsers(t *testing.T) {
	service, userRepo := NewMock(t)

	t.Run("Filter passes through", func(t *testing.T) {
		userRepo.EXPECT().List(gomock.Any(), domain.UserFilter{Role: domain.RoleTutor}).Return([]domain.User{{ID: 1}}, nil)
		users, err := service.List(context.Background(), domain.UserFilter{Role: domain.RoleTutor})
		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("Repo error surfaces", func(t *testing.T) {
		userRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := service.List(context.Background(), domain.UserFilter{})
		assert.Error(t, err)
	})
}

func TestGetUser(t *testing.T) {
	service, userRepo := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Sara"}, nil)
		user, err := service.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Sara", user.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)
		_, err := service.Get(context.Background(), 404)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name          string
		identity      auth.Identity
		input         UpdateInput
		prepareMock   func(userRepo *MockUserRepo)
		expectedError error
	}{
		{
			name:     "Owner updates non-empty fields only",
			identity: auth.Identity{UserID: 1, Role: domain.RoleStudent},
			input:    UpdateInput{Name: "New Name", Bio: "new bio"},
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Old Name", Phone: "0100"}, nil)
				userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) error {
						assert.Equal(t, "New Name", user.Name)
						assert.Equal(t, "new bio", user.Bio)
						assert.Equal(t, "0100", user.Phone)
						return nil
					},
				)
			},
		},
		{
			name:     "Admin may update anyone",
			identity: auth.Identity{UserID: 99, Role: domain.RoleAdmin},
			input:    UpdateInput{Name: "Renamed"},
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				userRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Stranger is rejected",
			identity:      auth.Identity{UserID: 2, Role: domain.RoleStudent},
			input:         UpdateInput{Name: "Hijack"},
			prepareMock:   func(*MockUserRepo) {},
			expectedError: ErrNotAllowed,
		},
		{
			name:     "Target not found",
			identity: auth.Identity{UserID: 1, Role: domain.RoleStudent},
			input:    UpdateInput{Name: "New Name"},
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := NewMock(t)
			tt.prepareMock(userRepo)

			_, err := service.Update(context.Background(), tt.identity, 1, tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBalance(t *testing.T) {
	identity := auth.Identity{UserID: 1, Role: domain.RoleStudent}

	t.Run("Add credits the wallet", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 100}, nil)
		userRepo.EXPECT().AdjustBalance(gomock.Any(), 1, 50.0).Return(nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 150}, nil)

		user, err := service.UpdateBalance(context.Background(), identity, 1, 50, "add")
		assert.NoError(t, err)
		assert.Equal(t, 150.0, user.Balance)
	})

	t.Run("Subtract below zero is rejected", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 100}, nil)
		userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 500.0).Return(false, nil)

		_, err := service.UpdateBalance(context.Background(), identity, 1, 500, "subtract")
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("Stranger is rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.UpdateBalance(context.Background(), auth.Identity{UserID: 2, Role: domain.RoleStudent}, 1, 50, "add")
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestFavorites(t *testing.T) {
	identity := auth.Identity{UserID: 1, Role: domain.RoleStudent}

	t.Run("Added", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().AddFavorite(gomock.Any(), 1, 7).Return(true, nil)

		_, err := service.AddFavorite(context.Background(), identity, 1, 7)
		assert.NoError(t, err)
	})

	t.Run("Adding twice is rejected", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().AddFavorite(gomock.Any(), 1, 7).Return(false, nil)

		_, err := service.AddFavorite(context.Background(), identity, 1, 7)
		assert.ErrorIs(t, err, ErrAlreadyFavorite)
	})

	t.Run("Only the owner manages favorites", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.AddFavorite(context.Background(), auth.Identity{UserID: 2, Role: domain.RoleAdmin}, 1, 7)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("Removed", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().RemoveFavorite(gomock.Any(), 1, 7).Return(nil)

		_, err := service.RemoveFavorite(context.Background(), identity, 1, 7)
		assert.NoError(t, err)
	})

	t.Run("Listed", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().GetFavorites(gomock.Any(), 1).Return([]int{7, 9}, nil)

		favorites, err := service.GetFavorites(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, []int{7, 9}, favorites)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
		assert.NoError(t, service.Delete(context.Background(), 1))
	})

	t.Run("Not found", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
		assert.ErrorIs(t, service.Delete(context.Background(), 1), ErrUserNotFound)
	})
}
