package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/dto"
	authservice "github.com/thanawiyapro/tutormarket/internal/service/authservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
	"github.com/thanawiyapro/tutormarket/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetMe(ctx context.Context, userID int) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	GenerateToken(userID int, role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account; tutors also get their profile created in the same call
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	utils.Response{data=dto.AuthResponseDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body or email taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Phone:            req.Phone,
		Role:             req.Role,
		Track:            req.Track,
		Interests:        req.Interests,
		University:       req.University,
		Major:            req.Major,
		Year:             req.Year,
		TeachingSubjects: req.TeachingSubjects,
		HourlyRate:       req.HourlyRate,
		TutorBio:         req.TutorBio,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken), errors.Is(err, authservice.ErrTutorFieldsMissing):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.NewResponse("User registered successfully", dto.AuthResponseDTO{
		User:  dto.NewUserDTO(user),
		Token: token,
	}))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password, returns the user and a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	utils.Response{data=dto.AuthResponseDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Login successful", dto.AuthResponseDTO{
		User:  dto.NewUserDTO(user),
		Token: token,
	}))
}

// GetMe godoc
//
//	@Summary		Get current user
//	@Description	Return the profile of the authenticated user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response{data=dto.UserDTO}
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity := pkgauth.IdentityFromContext(r.Context())

	user, err := h.authService.GetMe(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Data: dto.NewUserDTO(user)})
}

// UpdatePassword godoc
//
//	@Summary		Update password
//	@Description	Verify the current password and replace it, returns a fresh token
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdatePasswordRequestDTO	true	"Password change request body"
//	@Success		200		{object}	utils.Response{data=dto.TokenResponseDTO}
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Current password is incorrect"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/password [put]
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity := pkgauth.IdentityFromContext(r.Context())

	var req dto.UpdatePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide current and new password")
		return
	}

	err := h.authService.ChangePassword(r.Context(), identity.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrWrongPassword):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, authservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(identity.UserID, identity.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.NewResponse("Password updated successfully", dto.TokenResponseDTO{Token: token}))
}
