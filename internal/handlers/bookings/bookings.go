package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/dto"
	"github.com/thanawiyapro/tutormarket/internal/service/bookingservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
	"github.com/thanawiyapro/tutormarket/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, studentID int, in bookingservice.CreateInput) (*domain.Booking, error)
	Update(ctx context.Context, identity pkgauth.Identity, id int, in bookingservice.UpdateInput) (*domain.Booking, error)
	Get(ctx context.Context, identity pkgauth.Identity, id int) (*domain.BookingDetail, error)
	List(ctx context.Context, identity pkgauth.Identity, filter domain.BookingFilter) ([]domain.BookingDetail, error)
	Delete(ctx context.Context, id int) error
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Create godoc
//
//	@Summary		Book a session
//	@Description	Create a booking and pay for it from the wallet in one step
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request body"
//	@Success		201		{object}	utils.Response{data=dto.BookingDTO}
//	@Failure		400		{object}	utils.Response	"Invalid body or insufficient balance"
//	@Failure		404		{object}	utils.Response	"Tutor not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	booking, err := h.bookingService.Create(r.Context(), identity.UserID, bookingservice.CreateInput{
		TutorID:     req.TutorID,
		Subject:     req.Subject,
		SessionDate: req.SessionDate,
		Duration:    req.Duration,
		SessionType: req.SessionType,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.NewResponse("Booking created successfully", dto.NewBookingDTO(booking)))
}

// List godoc
//
//	@Summary		List bookings
//	@Description	Students and tutors see their own bookings; admins see everything
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"Booking status"
//	@Param			studentId	query		int		false	"Filter by student (admin only)"
//	@Param			tutorId		query		int		false	"Filter by tutor (admin only)"
//	@Param			from		query		string	false	"Sessions from this date (RFC 3339)"
//	@Param			to			query		string	false	"Sessions up to this date (RFC 3339)"
//	@Success		200			{object}	utils.Response{data=[]dto.BookingDTO}
//	@Failure		400			{object}	utils.Response	"Invalid filter value"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [get]
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	bookings, err := h.bookingService.List(r.Context(), identity, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.NewBookingDetailDTO(&bookings[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewListResponse(out, len(out)))
}

// Get godoc
//
//	@Summary		Get booking by id
//	@Description	Return a booking with the student and tutor attached; only participants and admins may look
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	utils.Response{data=dto.BookingDTO}
//	@Failure		400	{object}	utils.Response	"Invalid booking id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	booking, err := h.bookingService.Get(r.Context(), identity, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: dto.NewBookingDetailDTO(booking)})
}

// Update godoc
//
//	@Summary		Update booking
//	@Description	Drive the status transitions (confirm, complete, cancel, reject) and the post-session rating
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Booking ID"
//	@Param			request	body		dto.UpdateBookingRequestDTO	true	"Status and/or rating"
//	@Success		200		{object}	utils.Response{data=dto.BookingDTO}
//	@Failure		400		{object}	utils.Response	"Invalid body or premature rating"
//	@Failure		403		{object}	utils.Response	"Transition not permitted for this caller"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [put]
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.UpdateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	booking, err := h.bookingService.Update(r.Context(), identity, id, bookingservice.UpdateInput{
		Status:             req.Status,
		CancellationReason: req.CancellationReason,
		Rating:             req.Rating,
		Review:             req.Review,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Booking updated successfully", dto.NewBookingDTO(booking)))
}

// Delete godoc
//
//	@Summary		Delete booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid booking id"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [delete]
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}
	if err := h.bookingService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Booking deleted successfully"})
}

func parseFilter(r *http.Request) (domain.BookingFilter, error) {
	q := r.URL.Query()
	filter := domain.BookingFilter{Status: q.Get("status")}

	if raw := q.Get("studentId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return domain.BookingFilter{}, errors.New("invalid value for studentId")
		}
		filter.StudentID = &id
	}
	if raw := q.Get("tutorId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return domain.BookingFilter{}, errors.New("invalid value for tutorId")
		}
		filter.TutorID = &id
	}
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.BookingFilter{}, errors.New("invalid value for from")
		}
		filter.FromDate = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domain.BookingFilter{}, errors.New("invalid value for to")
		}
		filter.ToDate = &t
	}
	return filter, nil
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrBookingNotFound), errors.Is(err, bookingservice.ErrTutorNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrNotAllowed),
		errors.Is(err, bookingservice.ErrStudentCancelOnly),
		errors.Is(err, bookingservice.ErrTutorTransition):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrInsufficientBalance),
		errors.Is(err, bookingservice.ErrRatingNotCompleted):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
