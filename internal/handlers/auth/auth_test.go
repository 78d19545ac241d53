package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	authservice "github.com/thanawiyapro/tutormarket/internal/service/authservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedContext(req *http.Request, userID int, role string) *http.Request {
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)
	return req.WithContext(ctx)
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"name":"Sara","email":"sara@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&domain.User{
					ID:    1,
					Name:  "Sara",
					Email: "sara@example.com",
					Role:  domain.RoleStudent,
				}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Email already taken",
			body: `{"name":"Sara","email":"sara@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrEmailTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Missing required fields",
			body:         `{"name":"Sara"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Error generating token",
			body: `{"name":"Sara","email":"sara@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1, Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				assert.False(t, resp.Success)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"sara@example.com","password":"secret123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "sara@example.com", "secret123").Return(&domain.User{ID: 1, Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"sara@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "sara@example.com", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Missing credentials",
			body:          `{"email":"sara@example.com"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Please provide email and password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns the current user", func(t *testing.T) {
		service.EXPECT().GetMe(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Sara"}, nil)

		req := authedContext(httptest.NewRequest("GET", "/api/auth/me", nil), 1, domain.RoleStudent)
		rr := httptest.NewRecorder()

		handler.GetMe(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("User not found", func(t *testing.T) {
		service.EXPECT().GetMe(gomock.Any(), 1).Return(nil, authservice.ErrUserNotFound)

		req := authedContext(httptest.NewRequest("GET", "/api/auth/me", nil), 1, domain.RoleStudent)
		rr := httptest.NewRecorder()

		handler.GetMe(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdatePasswordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Password updated",
			body: `{"currentPassword":"oldpass","newPassword":"newpass1"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "oldpass", "newpass1").Return(nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("fresh-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong current password",
			body: `{"currentPassword":"wrong","newPassword":"newpass1"}`,
			prepareMock: func() {
				service.EXPECT().ChangePassword(gomock.Any(), 1, "wrong", "newpass1").Return(authservice.ErrWrongPassword)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: authservice.ErrWrongPassword.Error(),
		},
		{
			name:          "Missing fields",
			body:          `{"currentPassword":"oldpass"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Please provide current and new password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedContext(httptest.NewRequest("PUT", "/api/auth/password", bytes.NewReader([]byte(tt.body))), 1, domain.RoleStudent)
			rr := httptest.NewRecorder()

			handler.UpdatePassword(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
