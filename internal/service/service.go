package service

import (
	"github.com/thanawiyapro/tutormarket/internal/config"
	"github.com/thanawiyapro/tutormarket/internal/handlers/auth"
	"github.com/thanawiyapro/tutormarket/internal/handlers/bookings"
	"github.com/thanawiyapro/tutormarket/internal/handlers/payments"
	"github.com/thanawiyapro/tutormarket/internal/handlers/tutors"
	"github.com/thanawiyapro/tutormarket/internal/handlers/users"
	"github.com/thanawiyapro/tutormarket/internal/pg"
	"github.com/thanawiyapro/tutormarket/internal/repo"
	authservice "github.com/thanawiyapro/tutormarket/internal/service/authservice"
	bookingservice "github.com/thanawiyapro/tutormarket/internal/service/bookingservice"
	paymentservice "github.com/thanawiyapro/tutormarket/internal/service/paymentservice"
	tutorservice "github.com/thanawiyapro/tutormarket/internal/service/tutorservice"
	userservice "github.com/thanawiyapro/tutormarket/internal/service/userservice"
	pkgauth "github.com/thanawiyapro/tutormarket/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	UserService    users.Service
	TutorService   tutors.Service
	BookingService bookings.Service
	PaymentService payments.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	authService := authservice.New(repo.UserRepo, repo.TutorRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(repo.UserRepo)
	tutorService := tutorservice.New(repo.TutorRepo, repo.UserRepo, txManager, cfg)
	bookingService := bookingservice.New(repo.BookingRepo, repo.UserRepo, repo.TutorRepo, repo.PaymentRepo, txManager)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.UserRepo, txManager)

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		TutorService:   tutorService,
		BookingService: bookingService,
		PaymentService: paymentService,
	}
}
