package repo

import (
	"github.com/thanawiyapro/tutormarket/internal/pg"
	bookingrepo "github.com/thanawiyapro/tutormarket/internal/repo/booking-repo"
	paymentrepo "github.com/thanawiyapro/tutormarket/internal/repo/payment-repo"
	tutorrepo "github.com/thanawiyapro/tutormarket/internal/repo/tutor-repo"
	userrepo "github.com/thanawiyapro/tutormarket/internal/repo/user-repo"
)

// Repositories exposes the concrete repositories; each service narrows them
// down to the interface it actually consumes.
type Repositories struct {
	UserRepo    *userrepo.Repository
	TutorRepo   *tutorrepo.Repository
	BookingRepo *bookingrepo.Repository
	PaymentRepo *paymentrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		TutorRepo:   tutorrepo.New(conn),
		BookingRepo: bookingrepo.New(conn),
		PaymentRepo: paymentrepo.New(conn),
	}
}
