package bookingrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
)

const bookingColumns = `b.id, b.student_id, b.tutor_id, b.subject, b.session_date, b.duration,
       b.hourly_rate, b.total_price, b.status, b.session_type, b.location, b.notes,
       b.payment_status, b.cancelled_by, b.cancelled_at, b.cancellation_reason,
       b.rating, b.review, b.created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.StudentID, &b.TutorID, &b.Subject, &b.SessionDate, &b.Duration,
		&b.HourlyRate, &b.TotalPrice, &b.Status, &b.SessionType, &b.Location, &b.Notes,
		&b.PaymentStatus, &b.CancelledBy, &b.CancelledAt, &b.CancellationReason,
		&b.Rating, &b.Review, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`
	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query := `
		INSERT INTO bookings (student_id, tutor_id, subject, session_date, duration,
		                      hourly_rate, total_price, status, session_type, location, notes, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		booking.StudentID, booking.TutorID, booking.Subject, booking.SessionDate, booking.Duration,
		booking.HourlyRate, booking.TotalPrice, booking.Status, booking.SessionType,
		booking.Location, booking.Notes, booking.PaymentStatus,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET status = $1, payment_status = $2, cancelled_by = $3, cancelled_at = $4,
		    cancellation_reason = $5, rating = $6, review = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		booking.Status, booking.PaymentStatus, booking.CancelledBy, booking.CancelledAt,
		booking.CancellationReason, booking.Rating, booking.Review, booking.ID,
	)
	if err != nil {
		zap.L().Error("can't update booking", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete booking", zap.Error(err))
		return err
	}
	return nil
}

const detailColumns = bookingColumns + `,
       s.id, s.name, s.email, s.phone, s.avatar,
       t.id, t.name, t.email, t.phone, t.avatar`

func scanBookingDetail(rows pgx.Rows) (*domain.BookingDetail, error) {
	var bd domain.BookingDetail
	err := rows.Scan(
		&bd.ID, &bd.StudentID, &bd.TutorID, &bd.Subject, &bd.SessionDate, &bd.Duration,
		&bd.HourlyRate, &bd.TotalPrice, &bd.Status, &bd.SessionType, &bd.Location, &bd.Notes,
		&bd.PaymentStatus, &bd.CancelledBy, &bd.CancelledAt, &bd.CancellationReason,
		&bd.Booking.Rating, &bd.Review, &bd.CreatedAt,
		&bd.Student.ID, &bd.Student.Name, &bd.Student.Email, &bd.Student.Phone, &bd.Student.Avatar,
		&bd.Tutor.ID, &bd.Tutor.Name, &bd.Tutor.Email, &bd.Tutor.Phone, &bd.Tutor.Avatar,
	)
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *Repository) FindDetailByID(ctx context.Context, id int) (*domain.BookingDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN users s ON s.id = b.student_id
		JOIN users t ON t.id = b.tutor_id
		WHERE b.id = $1
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		zap.L().Error("can't find booking detail", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	bd, err := scanBookingDetail(rows)
	if err != nil {
		zap.L().Error("can't scan booking detail", zap.Error(err))
		return nil, err
	}
	return bd, nil
}

func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.BookingDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN users s ON s.id = b.student_id
		JOIN users t ON t.id = b.tutor_id
		WHERE 1=1`
	args := []any{}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND b.student_id = $%d", len(args))
	}
	if filter.TutorID != nil {
		args = append(args, *filter.TutorID)
		query += fmt.Sprintf(" AND b.tutor_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		query += fmt.Sprintf(" AND b.session_date >= $%d", len(args))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		query += fmt.Sprintf(" AND b.session_date <= $%d", len(args))
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.BookingDetail
	for rows.Next() {
		bd, err := scanBookingDetail(rows)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, *bd)
	}
	return bookings, nil
}
