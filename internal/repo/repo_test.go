package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	bookingrepo "github.com/thanawiyapro/tutormarket/internal/repo/booking-repo"
	paymentrepo "github.com/thanawiyapro/tutormarket/internal/repo/payment-repo"
	tutorrepo "github.com/thanawiyapro/tutormarket/internal/repo/tutor-repo"
	userrepo "github.com/thanawiyapro/tutormarket/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TutorRepo)
	assert.NotNil(t, repo.BookingRepo)
	assert.NotNil(t, repo.PaymentRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &tutorrepo.Repository{}, repo.TutorRepo)
	assert.IsType(t, &bookingrepo.Repository{}, repo.BookingRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
