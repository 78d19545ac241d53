package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/dto"
	"github.com/thanawiyapro/tutormarket/internal/service/userservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
	"github.com/thanawiyapro/tutormarket/pkg/validate"
)

type Service interface {
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, identity pkgauth.Identity, id int, in userservice.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int) error
	UpdateBalance(ctx context.Context, identity pkgauth.Identity, id int, amount float64, operation string) (*domain.User, error)
	AddFavorite(ctx context.Context, identity pkgauth.Identity, id, tutorID int) (*domain.User, error)
	RemoveFavorite(ctx context.Context, identity pkgauth.Identity, id, tutorID int) (*domain.User, error)
	GetFavorites(ctx context.Context, userID int) ([]int, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List godoc
//
//	@Summary		List users
//	@Description	Return all users, optionally filtered by role or a name/email search
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			role	query		string	false	"Filter by role"
//	@Param			search	query		string	false	"Match against name or email"
//	@Success		200		{object}	utils.Response{data=[]dto.UserDTO}
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.UserFilter{
		Role:   r.URL.Query().Get("role"),
		Search: r.URL.Query().Get("search"),
	}

	users, err := h.userService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserDTO(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewListResponse(out, len(out)))
}

// Get godoc
//
//	@Summary		Get user by id
//	@Description	Return a single user profile with their favorite tutors
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response{data=dto.UserDTO}
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	identity := pkgauth.IdentityFromContext(r.Context())
	if identity.UserID != id && identity.Role != domain.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to access this user")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: h.userDTOWithFavorites(r.Context(), user)})
}

// Update godoc
//
//	@Summary		Update user profile
//	@Description	Apply the non-empty fields of the body to the user record
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.UpdateUserRequestDTO	true	"Profile fields"
//	@Success		200		{object}	utils.Response{data=dto.UserDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	user, err := h.userService.Update(r.Context(), identity, id, userservice.UpdateInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Bio:       req.Bio,
		Track:     req.Track,
		Interests: req.Interests,
		Avatar:    req.Avatar,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("User updated successfully", dto.NewUserDTO(user)))
}

// Delete godoc
//
//	@Summary		Delete user
//	@Description	Remove a user account and everything cascading from it
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.userService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "User deleted successfully"})
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not allowed"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Router			/api/users/{id}/balance [get]
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	identity := pkgauth.IdentityFromContext(r.Context())
	if identity.UserID != id && identity.Role != domain.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to access this user")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: map[string]float64{"balance": user.Balance}})
}

// UpdateBalance godoc
//
//	@Summary		Adjust wallet balance
//	@Description	Add to or subtract from the wallet; a subtract that would go negative is rejected
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.UpdateBalanceRequestDTO	true	"Amount and operation"
//	@Success		200		{object}	utils.Response{data=dto.UserDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body or insufficient balance"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/balance [put]
func (h *UserHandler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	user, err := h.userService.UpdateBalance(r.Context(), identity, id, req.Amount, req.Operation)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Balance updated successfully", dto.NewUserDTO(user)))
}

// AddFavorite godoc
//
//	@Summary		Add favorite tutor
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int	true	"User ID"
//	@Param			tutorId	path		int	true	"Tutor's user ID"
//	@Success		200		{object}	utils.Response{data=dto.UserDTO}
//	@Failure		400		{object}	utils.Response	"Already in favorites"
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/users/{id}/favorites/{tutorId} [post]
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	tutorID, err := strconv.Atoi(chi.URLParam(r, "tutorId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tutor id")
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	user, err := h.userService.AddFavorite(r.Context(), identity, id, tutorID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Tutor added to favorites", h.userDTOWithFavorites(r.Context(), user)))
}

// RemoveFavorite godoc
//
//	@Summary		Remove favorite tutor
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int	true	"User ID"
//	@Param			tutorId	path		int	true	"Tutor's user ID"
//	@Success		200		{object}	utils.Response{data=dto.UserDTO}
//	@Failure		403		{object}	utils.Response	"Not allowed"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/users/{id}/favorites/{tutorId} [delete]
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	tutorID, err := strconv.Atoi(chi.URLParam(r, "tutorId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tutor id")
		return
	}

	identity := pkgauth.IdentityFromContext(r.Context())
	user, err := h.userService.RemoveFavorite(r.Context(), identity, id, tutorID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Tutor removed from favorites", h.userDTOWithFavorites(r.Context(), user)))
}

// userDTOWithFavorites attaches the favorite tutor ids; a lookup failure
// degrades to an empty list rather than failing the whole request.
func (h *UserHandler) userDTOWithFavorites(ctx context.Context, user *domain.User) dto.UserDTO {
	out := dto.NewUserDTO(user)
	if favorites, err := h.userService.GetFavorites(ctx, user.ID); err == nil {
		out.FavoriteTutors = favorites
	}
	return out
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, userservice.ErrInsufficientBalance), errors.Is(err, userservice.ErrAlreadyFavorite):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
