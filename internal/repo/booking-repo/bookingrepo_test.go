package bookingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/thanawiyapro/tutormarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var bookingCols = []string{
	"id", "student_id", "tutor_id", "subject", "session_date", "duration",
	"hourly_rate", "total_price", "status", "session_type", "location", "notes",
	"payment_status", "cancelled_by", "cancelled_at", "cancellation_reason",
	"rating", "review", "created_at",
}

func bookingRow(sessionDate, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(bookingCols).AddRow(
		10, 1, 7, "Calculus", sessionDate, 2,
		150.0, 300.0, "pending", "online", "", "",
		"paid", (*int)(nil), (*time.Time)(nil), "",
		(*int)(nil), "", createdAt,
	)
}

func detailRow(sessionDate, createdAt time.Time) *pgxmock.Rows {
	cols := append(append([]string{}, bookingCols...),
		"s_id", "s_name", "s_email", "s_phone", "s_avatar",
		"t_id", "t_name", "t_email", "t_phone", "t_avatar",
	)
	return pgxmock.NewRows(cols).AddRow(
		10, 1, 7, "Calculus", sessionDate, 2,
		150.0, 300.0, "pending", "online", "", "",
		"paid", (*int)(nil), (*time.Time)(nil), "",
		(*int)(nil), "", createdAt,
		1, "Sara", "sara@example.com", "0100", "",
		7, "Omar", "omar@example.com", "0111", "",
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Booking found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10).
					WillReturnRows(bookingRow(now, now))
			},
			found: true,
		},
		{
			name: "Booking not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			booking, err := repo.FindByID(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 1, booking.StudentID)
				assert.Equal(t, 300.0, booking.TotalPrice)
			} else {
				assert.Nil(t, booking)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	sessionDate := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	t.Run("Booking created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings (student_id, tutor_id, subject, session_date, duration,`)).
			WithArgs(1, 7, "Calculus", sessionDate, 2, 150.0, 300.0, "pending", "online", "", "", "paid").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, createdAt))

		booking, err := repo.Create(context.Background(), &domain.Booking{
			StudentID: 1, TutorID: 7, Subject: "Calculus", SessionDate: sessionDate, Duration: 2,
			HourlyRate: 150, TotalPrice: 300, Status: domain.BookingPending,
			SessionType: "online", PaymentStatus: domain.PaymentStatusPaid,
		})
		assert.NoError(t, err)
		assert.Equal(t, 10, booking.ID)
		assert.Equal(t, createdAt, booking.CreatedAt)
	})

	t.Run("Insert error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
			WillReturnError(errors.New("constraint violation"))

		_, err := repo.Create(context.Background(), &domain.Booking{StudentID: 1, TutorID: 7})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	cancelledBy := 1
	cancelledAt := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE bookings
		SET status = $1, payment_status = $2, cancelled_by = $3, cancelled_at = $4,
		    cancellation_reason = $5, rating = $6, review = $7
		WHERE id = $8
	`)).
		WithArgs("cancelled", "refunded", &cancelledBy, &cancelledAt, "schedule conflict", (*int)(nil), "", 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.Booking{
		ID: 10, Status: domain.BookingCancelled, PaymentStatus: domain.PaymentStatusRefunded,
		CancelledBy: &cancelledBy, CancelledAt: &cancelledAt, CancellationReason: "schedule conflict",
	})
	assert.NoError(t, err)
}

func TestRepository_FindDetailByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Found with both participants", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.id = $1`)).
			WithArgs(10).
			WillReturnRows(detailRow(now, now))

		bd, err := repo.FindDetailByID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, "Sara", bd.Student.Name)
		assert.Equal(t, "Omar", bd.Tutor.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.id = $1`)).
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows(bookingCols))

		bd, err := repo.FindDetailByID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Nil(t, bd)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Student and status filters appended", func(t *testing.T) {
		studentID := 1
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE 1=1 AND b.student_id = $1 AND b.status = $2 ORDER BY b.created_at DESC`)).
			WithArgs(1, "pending").
			WillReturnRows(detailRow(now, now))

		bookings, err := repo.List(context.Background(), domain.BookingFilter{
			StudentID: &studentID,
			Status:    domain.BookingPending,
		})
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("Date range filters appended", func(t *testing.T) {
		from := now.Add(-24 * time.Hour)
		to := now.Add(24 * time.Hour)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE 1=1 AND b.session_date >= $1 AND b.session_date <= $2 ORDER BY b.created_at DESC`)).
			WithArgs(from, to).
			WillReturnRows(detailRow(now, now))

		bookings, err := repo.List(context.Background(), domain.BookingFilter{FromDate: &from, ToDate: &to})
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), domain.BookingFilter{})
		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM bookings WHERE id = $1`)).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 10))
}
