package tutorrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
)

const tutorColumns = `t.id, t.user_id, t.university, t.major, t.year, t.teaching_subjects,
       t.hourly_rate, t.tutor_bio, t.availability, t.rating, t.total_ratings,
       t.total_earnings, t.completed_sessions, t.is_verified, t.created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTutor(row pgx.Row) (*domain.Tutor, error) {
	var t domain.Tutor
	err := row.Scan(
		&t.ID, &t.UserID, &t.University, &t.Major, &t.Year, &t.TeachingSubjects,
		&t.HourlyRate, &t.TutorBio, &t.Availability, &t.Rating, &t.TotalRatings,
		&t.TotalEarnings, &t.CompletedSessions, &t.IsVerified, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutors t WHERE t.id = $1`
	tutor, err := scanTutor(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find tutor", zap.Error(err))
		return nil, err
	}
	return tutor, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Tutor, error) {
	query := `SELECT ` + tutorColumns + ` FROM tutors t WHERE t.user_id = $1`
	tutor, err := scanTutor(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find tutor by user id", zap.Error(err))
		return nil, err
	}
	return tutor, nil
}

func (r *Repository) Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error) {
	query := `
		INSERT INTO tutors (user_id, university, major, year, teaching_subjects, hourly_rate, tutor_bio, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tutor.UserID, tutor.University, tutor.Major, tutor.Year,
		tutor.TeachingSubjects, tutor.HourlyRate, tutor.TutorBio, tutor.Availability,
	).Scan(&tutor.ID, &tutor.CreatedAt)
	if err != nil {
		zap.L().Error("can't save tutor", zap.Error(err))
		return nil, err
	}
	return tutor, nil
}

func (r *Repository) Update(ctx context.Context, tutor *domain.Tutor) error {
	query := `
		UPDATE tutors
		SET university = $1, major = $2, year = $3, teaching_subjects = $4,
		    hourly_rate = $5, tutor_bio = $6, availability = $7
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query,
		tutor.University, tutor.Major, tutor.Year, tutor.TeachingSubjects,
		tutor.HourlyRate, tutor.TutorBio, tutor.Availability, tutor.ID,
	)
	if err != nil {
		zap.L().Error("can't update tutor", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tutors WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete tutor", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorDetail, error) {
	query := `
		SELECT ` + tutorColumns + `,
		       u.id, u.name, u.email, u.phone, u.avatar
		FROM tutors t
		JOIN users u ON u.id = t.user_id
		WHERE 1=1`
	args := []any{}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND $%d = ANY(t.teaching_subjects)", len(args))
	}
	if filter.MinRate != nil {
		args = append(args, *filter.MinRate)
		query += fmt.Sprintf(" AND t.hourly_rate >= $%d", len(args))
	}
	if filter.MaxRate != nil {
		args = append(args, *filter.MaxRate)
		query += fmt.Sprintf(" AND t.hourly_rate <= $%d", len(args))
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		query += fmt.Sprintf(" AND t.rating >= $%d", len(args))
	}
	if filter.University != "" {
		args = append(args, "%"+filter.University+"%")
		query += fmt.Sprintf(" AND t.university ILIKE $%d", len(args))
	}
	if filter.Year != "" {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND t.year = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND u.name ILIKE $%d", len(args))
	}
	query += " ORDER BY t.rating DESC, t.completed_sessions DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list tutors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tutors []domain.TutorDetail
	for rows.Next() {
		var td domain.TutorDetail
		err := rows.Scan(
			&td.ID, &td.UserID, &td.University, &td.Major, &td.Year, &td.TeachingSubjects,
			&td.HourlyRate, &td.TutorBio, &td.Availability, &td.Rating, &td.TotalRatings,
			&td.TotalEarnings, &td.CompletedSessions, &td.IsVerified, &td.CreatedAt,
			&td.User.ID, &td.User.Name, &td.User.Email, &td.User.Phone, &td.User.Avatar,
		)
		if err != nil {
			zap.L().Error("can't scan tutor row", zap.Error(err))
			return nil, err
		}
		tutors = append(tutors, td)
	}
	return tutors, nil
}

// ApplyRating folds one more rating into the running mean:
// new = (rating*total_ratings + value) / (total_ratings + 1).
func (r *Repository) ApplyRating(ctx context.Context, tutorUserID, value int) error {
	query := `
		UPDATE tutors
		SET rating = (rating * total_ratings + $1) / (total_ratings + 1),
		    total_ratings = total_ratings + 1
		WHERE user_id = $2
	`
	_, err := r.db.Exec(ctx, query, value, tutorUserID)
	if err != nil {
		zap.L().Error("can't apply rating", zap.Error(err))
		return err
	}
	return nil
}

// AddSessionStats records a completed session on the tutor side.
func (r *Repository) AddSessionStats(ctx context.Context, tutorUserID int, earnings float64) error {
	query := `
		UPDATE tutors
		SET completed_sessions = completed_sessions + 1, total_earnings = total_earnings + $1
		WHERE user_id = $2
	`
	_, err := r.db.Exec(ctx, query, earnings, tutorUserID)
	if err != nil {
		zap.L().Error("can't update tutor session stats", zap.Error(err))
		return err
	}
	return nil
}
