package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/service/userservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, userID int, role string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)

	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestListUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Role filter passes through", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), domain.UserFilter{Role: domain.RoleTutor}).Return([]domain.User{{ID: 1}, {ID: 2}}, nil)

		req := newRequest("GET", "/api/users?role=tutor", "", 99, domain.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, *resp.Count)
	})
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       int
		role         string
		param        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Owner reads own profile with favorites",
			userID: 1, role: domain.RoleStudent, param: "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Sara"}, nil)
				service.EXPECT().GetFavorites(gomock.Any(), 1).Return([]int{7}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Admin reads any profile",
			userID: 99, role: domain.RoleAdmin, param: "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GetFavorites(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Stranger is rejected",
			userID: 2, role: domain.RoleStudent, param: "1",
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Not found",
			userID: 1, role: domain.RoleStudent, param: "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Invalid id",
			userID: 1, role: domain.RoleStudent, param: "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("GET", "/api/users/"+tt.param, "", tt.userID, tt.role, map[string]string{"id": tt.param})
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Profile updated", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), pkgauth.Identity{UserID: 1, Role: domain.RoleStudent}, 1, userservice.UpdateInput{Name: "New Name"}).
			Return(&domain.User{ID: 1, Name: "New Name"}, nil)

		req := newRequest("PUT", "/api/users/1", `{"name":"New Name"}`, 1, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not allowed", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), gomock.Any(), 1, gomock.Any()).Return(nil, userservice.ErrNotAllowed)

		req := newRequest("PUT", "/api/users/1", `{"name":"Hijack"}`, 2, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Invalid body", func(t *testing.T) {
		req := newRequest("PUT", "/api/users/1", `{invalid`, 1, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBalanceHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Balance returned", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 150}, nil)

		req := newRequest("GET", "/api/users/1/balance", "", 1, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.GetBalance(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "150")
	})

	t.Run("Add operation", func(t *testing.T) {
		service.EXPECT().UpdateBalance(gomock.Any(), pkgauth.Identity{UserID: 1, Role: domain.RoleStudent}, 1, 50.0, "add").
			Return(&domain.User{ID: 1, Balance: 200}, nil)

		req := newRequest("PUT", "/api/users/1/balance", `{"amount":50,"operation":"add"}`, 1, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.UpdateBalance(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		service.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), 1, 500.0, "subtract").
			Return(nil, userservice.ErrInsufficientBalance)

		req := newRequest("PUT", "/api/users/1/balance", `{"amount":500,"operation":"subtract"}`, 1, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.UpdateBalance(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid operation", func(t *testing.T) {
		req := newRequest("PUT", "/api/users/1/balance", `{"amount":50,"operation":"multiply"}`, 1, domain.RoleStudent, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.UpdateBalance(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestFavoriteHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Favorite added", func(t *testing.T) {
		service.EXPECT().AddFavorite(gomock.Any(), pkgauth.Identity{UserID: 1, Role: domain.RoleStudent}, 1, 7).
			Return(&domain.User{ID: 1}, nil)
		service.EXPECT().GetFavorites(gomock.Any(), 1).Return([]int{7}, nil)

		req := newRequest("POST", "/api/users/1/favorites/7", "", 1, domain.RoleStudent, map[string]string{"id": "1", "tutorId": "7"})
		rr := httptest.NewRecorder()

		handler.AddFavorite(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Duplicate favorite", func(t *testing.T) {
		service.EXPECT().AddFavorite(gomock.Any(), gomock.Any(), 1, 7).Return(nil, userservice.ErrAlreadyFavorite)

		req := newRequest("POST", "/api/users/1/favorites/7", "", 1, domain.RoleStudent, map[string]string{"id": "1", "tutorId": "7"})
		rr := httptest.NewRecorder()

		handler.AddFavorite(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Favorite removed", func(t *testing.T) {
		service.EXPECT().RemoveFavorite(gomock.Any(), gomock.Any(), 1, 7).Return(&domain.User{ID: 1}, nil)
		service.EXPECT().GetFavorites(gomock.Any(), 1).Return(nil, nil)

		req := newRequest("DELETE", "/api/users/1/favorites/7", "", 1, domain.RoleStudent, map[string]string{"id": "1", "tutorId": "7"})
		rr := httptest.NewRecorder()

		handler.RemoveFavorite(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid tutor id", func(t *testing.T) {
		req := newRequest("POST", "/api/users/1/favorites/x", "", 1, domain.RoleStudent, map[string]string{"id": "1", "tutorId": "x"})
		rr := httptest.NewRecorder()

		handler.AddFavorite(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 1).Return(nil)

		req := newRequest("DELETE", "/api/users/1", "", 99, domain.RoleAdmin, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 1).Return(userservice.ErrUserNotFound)

		req := newRequest("DELETE", "/api/users/1", "", 99, domain.RoleAdmin, map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
