package payments

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/service/paymentservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
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

func TestCreatePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Deposit created", func(t *testing.T) {
		service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, userID int, in paymentservice.CreateInput) (*domain.Payment, error) {
				assert.Equal(t, domain.PaymentTypeDeposit, in.Type)
				assert.Equal(t, 500.0, in.Amount)
				assert.Equal(t, "instapay", in.Method)
				return &domain.Payment{ID: 5, UserID: userID, Status: domain.TxnPending}, nil
			},
		)

		req := newRequest("POST", "/api/payments", `{"type":"deposit","amount":500,"paymentMethod":"instapay","transactionProof":"ref-123"}`, 1, domain.RoleStudent, nil)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Withdrawal above balance", func(t *testing.T) {
		service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, paymentservice.ErrInsufficientBalance)

		req := newRequest("POST", "/api/payments", `{"type":"withdrawal","amount":500,"paymentMethod":"bank"}`, 1, domain.RoleStudent, nil)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown payment method", func(t *testing.T) {
		req := newRequest("POST", "/api/payments", `{"type":"deposit","amount":500,"paymentMethod":"cheque"}`, 1, domain.RoleStudent, nil)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		req := newRequest("POST", "/api/payments", `{"type":"deposit","amount":0,"paymentMethod":"bank"}`, 1, domain.RoleStudent, nil)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListPaymentsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Type filter passes through", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), pkgauth.Identity{UserID: 1, Role: domain.RoleStudent}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pkgauth.Identity, filter domain.PaymentFilter) ([]domain.PaymentDetail, error) {
				assert.Equal(t, domain.PaymentTypeDeposit, filter.Type)
				return nil, nil
			},
		)

		req := newRequest("GET", "/api/payments?type=deposit", "", 1, domain.RoleStudent, nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Invalid userId filter", func(t *testing.T) {
		req := newRequest("GET", "/api/payments?userId=abc", "", 99, domain.RoleAdmin, nil)
		rr := httptest.NewRecorder()

		handler.List(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Owner reads own payment", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), pkgauth.Identity{UserID: 1, Role: domain.RoleStudent}, 5).Return(&domain.Payment{ID: 5, UserID: 1}, nil)

		req := newRequest("GET", "/api/payments/5", "", 1, domain.RoleStudent, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Stranger is rejected", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), gomock.Any(), 5).Return(nil, paymentservice.ErrNotAllowed)

		req := newRequest("GET", "/api/payments/5", "", 2, domain.RoleStudent, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Get(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestApprovePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Approved", func(t *testing.T) {
		service.EXPECT().Approve(gomock.Any(), 5).Return(&domain.Payment{ID: 5, Status: domain.TxnCompleted}, nil)

		req := newRequest("PUT", "/api/payments/5/approve", "", 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Approve(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Already settled", func(t *testing.T) {
		service.EXPECT().Approve(gomock.Any(), 5).Return(nil, paymentservice.ErrNotPending)

		req := newRequest("PUT", "/api/payments/5/approve", "", 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Approve(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Approve(gomock.Any(), 5).Return(nil, paymentservice.ErrPaymentNotFound)

		req := newRequest("PUT", "/api/payments/5/approve", "", 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Approve(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRejectPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Rejected with reason", func(t *testing.T) {
		service.EXPECT().Reject(gomock.Any(), 5, "no proof attached").Return(&domain.Payment{ID: 5, Status: domain.TxnRejected}, nil)

		req := newRequest("PUT", "/api/payments/5/reject", `{"reason":"no proof attached"}`, 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Reject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Empty body still works", func(t *testing.T) {
		service.EXPECT().Reject(gomock.Any(), 5, "").Return(&domain.Payment{ID: 5, Status: domain.TxnRejected}, nil)

		req := newRequest("PUT", "/api/payments/5/reject", "", 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Reject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUpdatePaymentStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Status overridden", func(t *testing.T) {
		service.EXPECT().UpdateStatus(gomock.Any(), 5, domain.TxnFailed).Return(&domain.Payment{ID: 5, Status: domain.TxnFailed}, nil)

		req := newRequest("PUT", "/api/payments/5/status", `{"status":"failed"}`, 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		req := newRequest("PUT", "/api/payments/5/status", `{"status":"voided"}`, 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.UpdateStatus(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeletePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Deleted", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 5).Return(nil)

		req := newRequest("DELETE", "/api/payments/5", "", 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), 5).Return(paymentservice.ErrPaymentNotFound)

		req := newRequest("DELETE", "/api/payments/5", "", 99, domain.RoleAdmin, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
