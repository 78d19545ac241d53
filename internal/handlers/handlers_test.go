package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/thanawiyapro/tutormarket/docs"
	authhandlers "github.com/thanawiyapro/tutormarket/internal/handlers/auth"
	bookinghandlers "github.com/thanawiyapro/tutormarket/internal/handlers/bookings"
	paymenthandlers "github.com/thanawiyapro/tutormarket/internal/handlers/payments"
	tutorhandlers "github.com/thanawiyapro/tutormarket/internal/handlers/tutors"
	userhandlers "github.com/thanawiyapro/tutormarket/internal/handlers/users"
	"github.com/thanawiyapro/tutormarket/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		UserService:    userhandlers.NewMockService(ctrl),
		TutorService:   tutorhandlers.NewMockService(ctrl),
		BookingService: bookinghandlers.NewMockService(ctrl),
		PaymentService: paymenthandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockTutorHandler := NewMockTutorHandler(ctrl)
	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockTutorHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockTutorHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockTutorHandler.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		UserHandler:    mockUserHandler,
		TutorHandler:   mockTutorHandler,
		BookingHandler: mockBookingHandler,
		PaymentHandler: mockPaymentHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/", http.StatusOK},
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/auth/me", http.StatusUnauthorized},
		{"PUT", "/api/auth/password", http.StatusUnauthorized},
		{"GET", "/api/tutors", http.StatusOK},
		{"GET", "/api/tutors/3", http.StatusOK},
		{"GET", "/api/tutors/user/7", http.StatusOK},
		{"POST", "/api/tutors", http.StatusUnauthorized},
		{"DELETE", "/api/tutors/3", http.StatusUnauthorized},
		{"GET", "/api/users", http.StatusUnauthorized},
		{"PUT", "/api/users/1/balance", http.StatusUnauthorized},
		{"POST", "/api/bookings", http.StatusUnauthorized},
		{"GET", "/api/bookings", http.StatusUnauthorized},
		{"POST", "/api/payments", http.StatusUnauthorized},
		{"PUT", "/api/payments/5/approve", http.StatusUnauthorized},
		{"DELETE", "/api/payments/5", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
