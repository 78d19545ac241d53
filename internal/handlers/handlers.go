package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/thanawiyapro/tutormarket/docs"
	"github.com/thanawiyapro/tutormarket/internal/domain"
	authhandlers "github.com/thanawiyapro/tutormarket/internal/handlers/auth"
	bookinghandlers "github.com/thanawiyapro/tutormarket/internal/handlers/bookings"
	paymenthandlers "github.com/thanawiyapro/tutormarket/internal/handlers/payments"
	tutorhandlers "github.com/thanawiyapro/tutormarket/internal/handlers/tutors"
	userhandlers "github.com/thanawiyapro/tutormarket/internal/handlers/users"
	"github.com/thanawiyapro/tutormarket/internal/service"
	"github.com/thanawiyapro/tutormarket/pkg/auth"
	"github.com/thanawiyapro/tutormarket/pkg/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdatePassword(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	UpdateBalance(w http.ResponseWriter, r *http.Request)
	AddFavorite(w http.ResponseWriter, r *http.Request)
	RemoveFavorite(w http.ResponseWriter, r *http.Request)
}

type TutorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByUserID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	UserHandler    UserHandler
	TutorHandler   TutorHandler
	BookingHandler BookingHandler
	PaymentHandler PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		UserHandler:    userhandlers.New(s.UserService),
		TutorHandler:   tutorhandlers.New(s.TutorService),
		BookingHandler: bookinghandlers.New(s.BookingService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true, Message: "Tutoring API is running"})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/me", h.AuthHandler.GetMe)
			r.Put("/password", h.AuthHandler.UpdatePassword)
		})
	})

	r.Route("/api/tutors", func(r chi.Router) {
		r.Get("/", h.TutorHandler.List)
		r.Get("/user/{userId}", h.TutorHandler.GetByUserID)
		r.Get("/{id}", h.TutorHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/", h.TutorHandler.Create)
			r.Put("/{id}", h.TutorHandler.Update)
			r.With(auth.RequireRole(domain.RoleAdmin)).Delete("/{id}", h.TutorHandler.Delete)
		})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.With(auth.RequireRole(domain.RoleAdmin)).Get("/", h.UserHandler.List)
		r.Get("/{id}", h.UserHandler.Get)
		r.Put("/{id}", h.UserHandler.Update)
		r.With(auth.RequireRole(domain.RoleAdmin)).Delete("/{id}", h.UserHandler.Delete)
		r.Get("/{id}/balance", h.UserHandler.GetBalance)
		r.Put("/{id}/balance", h.UserHandler.UpdateBalance)
		r.Post("/{id}/favorites/{tutorId}", h.UserHandler.AddFavorite)
		r.Delete("/{id}/favorites/{tutorId}", h.UserHandler.RemoveFavorite)
	})

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/", h.BookingHandler.Create)
		r.Get("/", h.BookingHandler.List)
		r.Get("/{id}", h.BookingHandler.Get)
		r.Put("/{id}", h.BookingHandler.Update)
		r.With(auth.RequireRole(domain.RoleAdmin)).Delete("/{id}", h.BookingHandler.Delete)
	})

	r.Route("/api/payments", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/", h.PaymentHandler.Create)
		r.Get("/", h.PaymentHandler.List)
		r.Get("/{id}", h.PaymentHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleAdmin))
			r.Put("/{id}/approve", h.PaymentHandler.Approve)
			r.Put("/{id}/reject", h.PaymentHandler.Reject)
			r.Put("/{id}/status", h.PaymentHandler.UpdateStatus)
			r.Delete("/{id}", h.PaymentHandler.Delete)
		})
	})

	return r
}
