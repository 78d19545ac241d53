package tutors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/dto"
	"github.com/thanawiyapro/tutormarket/internal/service/tutorservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
	"github.com/thanawiyapro/tutormarket/pkg/validate"
)

type Service interface {
	List(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorDetail, error)
	Get(ctx context.Context, id int) (*domain.Tutor, error)
	GetByUserID(ctx context.Context, userID int) (*domain.Tutor, error)
	Create(ctx context.Context, userID int, in tutorservice.TutorInput) (*domain.Tutor, error)
	Update(ctx context.Context, identity pkgauth.Identity, id int, in tutorservice.TutorInput) (*domain.Tutor, error)
	Delete(ctx context.Context, id int) error
}

type TutorHandler struct {
	tutorService Service
}

func New(tutorService Service) *TutorHandler {
	return &TutorHandler{
		tutorService: tutorService,
	}
}

// List godoc
//
//	@Summary		List tutors
//	@Description	Browse tutor profiles with optional filters, sorted by rating
//	@Tags			Tutors
//	@Produce		json
//	@Param			subject		query		string	false	"Teaching subject"
//	@Param			university	query		string	false	"University"
//	@Param			year		query		string	false	"Academic year"
//	@Param			minRate		query		number	false	"Minimum hourly rate"
//	@Param			maxRate		query		number	false	"Maximum hourly rate"
//	@Param			minRating	query		number	false	"Minimum rating"
//	@Param			search		query		string	false	"Match against tutor name"
//	@Success		200			{object}	utils.Response{data=[]dto.TutorDTO}
//	@Failure		400			{object}	utils.Response	"Invalid filter value"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/tutors [get]
func (h *TutorHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tutors, err := h.tutorService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.TutorDTO, 0, len(tutors))
	for i := range tutors {
		out = append(out, dto.NewTutorDetailDTO(&tutors[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewListResponse(out, len(out)))
}

// Get godoc
//
//	@Summary		Get tutor by id
//	@Tags			Tutors
//	@Produce		json
//	@Param			id	path		int	true	"Tutor profile ID"
//	@Success		200	{object}	utils.Response{data=dto.TutorDTO}
//	@Failure		400	{object}	utils.Response	"Invalid tutor id"
//	@Failure		404	{object}	utils.Response	"Tutor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tutors/{id} [get]
func (h *TutorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tutor id")
		return
	}

	tutor, err := h.tutorService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tutorservice.ErrTutorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: dto.NewTutorDTO(tutor)})
}

// GetByUserID godoc
//
//	@Summary		Get tutor by owner user id
//	@Tags			Tutors
//	@Produce		json
//	@Param			userId	path		int	true	"Owning user ID"
//	@Success		200		{object}	utils.Response{data=dto.TutorDTO}
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		404		{object}	utils.Response	"Tutor not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tutors/user/{userId} [get]
func (h *TutorHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	tutor, err := h.tutorService.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, tutorservice.ErrTutorNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: dto.NewTutorDTO(tutor)})
}

// Create godoc
//
//	@Summary		Create tutor profile
//	@Description	Open a tutor profile for the authenticated user and promote them to the tutor role
//	@Tags			Tutors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTutorRequestDTO	true	"Tutor profile body"
//	@Success		201		{object}	utils.Response{data=dto.TutorDTO}
//	@Failure		400		{object}	utils.Response	"Invalid body, profile exists or rate out of range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tutors [post]
func (h *TutorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTutorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	tutor, err := h.tutorService.Create(r.Context(), identity.UserID, tutorservice.TutorInput{
		University:       req.University,
		Major:            req.Major,
		Year:             req.Year,
		TeachingSubjects: req.TeachingSubjects,
		HourlyRate:       req.HourlyRate,
		TutorBio:         &req.TutorBio,
		Availability:     req.Availability,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.NewResponse("Tutor profile created successfully", dto.NewTutorDTO(tutor)))
}

// Update godoc
//
//	@Summary		Update tutor profile
//	@Description	Apply the non-empty fields of the body; only the owner or an admin may update
//	@Tags			Tutors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Tutor profile ID"
//	@Param			request	body		dto.UpdateTutorRequestDTO	true	"Tutor profile fields"
//	@Success		200		{object}	utils.Response{data=dto.TutorDTO}
//	@Failure		400		{object}	utils.Response	"Invalid body or rate out of range"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		404		{object}	utils.Response	"Tutor not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tutors/{id} [put]
func (h *TutorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tutor id")
		return
	}

	var req dto.UpdateTutorRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	tutor, err := h.tutorService.Update(r.Context(), identity, id, tutorservice.TutorInput{
		University:       req.University,
		Major:            req.Major,
		Year:             req.Year,
		TeachingSubjects: req.TeachingSubjects,
		HourlyRate:       req.HourlyRate,
		TutorBio:         req.TutorBio,
		Availability:     req.Availability,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Tutor profile updated successfully", dto.NewTutorDTO(tutor)))
}

// Delete godoc
//
//	@Summary		Delete tutor profile
//	@Description	Remove the profile and revert its owner to the student role
//	@Tags			Tutors
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Tutor profile ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid tutor id"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Tutor not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tutors/{id} [delete]
func (h *TutorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tutor id")
		return
	}
	if err := h.tutorService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Tutor profile deleted successfully"})
}

func parseFilter(r *http.Request) (domain.TutorFilter, error) {
	q := r.URL.Query()
	filter := domain.TutorFilter{
		Subject:    q.Get("subject"),
		University: q.Get("university"),
		Year:       q.Get("year"),
		Search:     q.Get("search"),
	}

	var err error
	if filter.MinRate, err = parseRate(q.Get("minRate")); err != nil {
		return domain.TutorFilter{}, errors.New("invalid value for minRate")
	}
	if filter.MaxRate, err = parseRate(q.Get("maxRate")); err != nil {
		return domain.TutorFilter{}, errors.New("invalid value for maxRate")
	}
	if filter.MinRating, err = parseRate(q.Get("minRating")); err != nil {
		return domain.TutorFilter{}, errors.New("invalid value for minRating")
	}
	return filter, nil
}

func parseRate(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tutorservice.ErrTutorNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tutorservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, tutorservice.ErrTutorExists), errors.Is(err, tutorservice.ErrRateOutOfRange):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
