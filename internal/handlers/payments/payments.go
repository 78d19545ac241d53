package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/dto"
	"github.com/thanawiyapro/tutormarket/internal/service/paymentservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
	"github.com/thanawiyapro/tutormarket/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, userID int, in paymentservice.CreateInput) (*domain.Payment, error)
	Approve(ctx context.Context, id int) (*domain.Payment, error)
	Reject(ctx context.Context, id int, reason string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Payment, error)
	Get(ctx context.Context, identity pkgauth.Identity, id int) (*domain.Payment, error)
	List(ctx context.Context, identity pkgauth.Identity, filter domain.PaymentFilter) ([]domain.PaymentDetail, error)
	Delete(ctx context.Context, id int) error
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Create godoc
//
//	@Summary		Create payment
//	@Description	Record a deposit or withdrawal; wallet payments settle instantly, everything else waits for admin review
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment request body"
//	@Success		201		{object}	utils.Response{data=dto.PaymentDTO}
//	@Failure		400		{object}	utils.Response	"Invalid body or insufficient balance"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	payment, err := h.paymentService.Create(r.Context(), identity.UserID, paymentservice.CreateInput{
		Type:             req.Type,
		Amount:           req.Amount,
		Method:           req.PaymentMethod,
		Description:      req.Description,
		TransactionProof: req.TransactionProof,
		BookingID:        req.BookingID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.NewResponse("Payment created successfully", dto.NewPaymentDTO(payment)))
}

// List godoc
//
//	@Summary		List payments
//	@Description	Users see their own payments; admins see everything and may filter by type or status
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	query		string	false	"Payment type"
//	@Param			status	query		string	false	"Payment status"
//	@Param			userId	query		int		false	"Filter by user (admin only)"
//	@Success		200		{object}	utils.Response{data=[]dto.PaymentDTO}
//	@Failure		400		{object}	utils.Response	"Invalid filter value"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PaymentFilter{
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}
	if raw := q.Get("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid value for userId")
			return
		}
		filter.UserID = &id
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	payments, err := h.paymentService.List(r.Context(), identity, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.PaymentDTO, 0, len(payments))
	for i := range payments {
		out = append(out, dto.NewPaymentDetailDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewListResponse(out, len(out)))
}

// Get godoc
//
//	@Summary		Get payment by id
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	utils.Response{data=dto.PaymentDTO}
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id} [get]
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	payment, err := h.paymentService.Get(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: dto.NewPaymentDTO(payment)})
}

// Approve godoc
//
//	@Summary		Approve payment
//	@Description	Settle a pending payment and apply its balance effect; repeat approvals are rejected
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	utils.Response{data=dto.PaymentDTO}
//	@Failure		400	{object}	utils.Response	"Payment is not pending"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id}/approve [put]
func (h *PaymentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	payment, err := h.paymentService.Approve(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Payment approved successfully", dto.NewPaymentDTO(payment)))
}

// Reject godoc
//
//	@Summary		Reject payment
//	@Description	Reject a pending payment with an optional reason; balances stay untouched
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payment ID"
//	@Param			request	body		dto.RejectPaymentRequestDTO	false	"Rejection reason"
//	@Success		200		{object}	utils.Response{data=dto.PaymentDTO}
//	@Failure		400		{object}	utils.Response	"Payment is not pending"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id}/reject [put]
func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	// the body is optional; an empty reason gets a default downstream
	var req dto.RejectPaymentRequestDTO
	_ = json.NewDecoder(r.Body).Decode(&req)

	payment, err := h.paymentService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Payment rejected", dto.NewPaymentDTO(payment)))
}

// UpdateStatus godoc
//
//	@Summary		Override payment status
//	@Description	Set the status directly without touching balances; for admin reconciliation
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Payment ID"
//	@Param			request	body		dto.UpdatePaymentRequestDTO	true	"New status"
//	@Success		200		{object}	utils.Response{data=dto.PaymentDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	var req dto.UpdatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := h.paymentService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Payment status updated", dto.NewPaymentDTO(payment)))
}

// Delete godoc
//
//	@Summary		Delete payment
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{id} [delete]
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	if err := h.paymentService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Payment deleted successfully"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrPaymentNotFound), errors.Is(err, paymentservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, paymentservice.ErrInsufficientBalance), errors.Is(err, paymentservice.ErrNotPending):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
