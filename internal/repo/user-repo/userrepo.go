package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
)

const userColumns = `id, name, email, password_hash, phone, role, avatar, bio, track, interests,
       balance, completed_sessions, total_spent, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.Avatar,
		&u.Bio, &u.Track, &u.Interests, &u.Balance, &u.CompletedSessions,
		&u.TotalSpent, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, phone, role, track, interests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Phone, user.Role, user.Track, user.Interests,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.Avatar,
			&u.Bio, &u.Track, &u.Interests, &u.Balance, &u.CompletedSessions,
			&u.TotalSpent, &u.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, phone = $2, bio = $3, track = $4, interests = $5, avatar = $6
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query,
		user.Name, user.Phone, user.Bio, user.Track, user.Interests, user.Avatar, user.ID,
	)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		zap.L().Error("can't update password", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRole(ctx context.Context, userID int, role string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, userID)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}

// AdjustBalance applies the delta as a single atomic increment.
func (r *Repository) AdjustBalance(ctx context.Context, userID int, delta float64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2`, delta, userID)
	if err != nil {
		zap.L().Error("can't adjust balance", zap.Error(err))
		return err
	}
	return nil
}

// DebitBalance debits only when the balance covers the amount, so two
// concurrent debits cannot drive it negative. Reports whether it applied.
func (r *Repository) DebitBalance(ctx context.Context, userID int, amount float64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`,
		amount, userID,
	)
	if err != nil {
		zap.L().Error("can't debit balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddSessionStats records a completed session on the student side.
func (r *Repository) AddSessionStats(ctx context.Context, userID int, spent float64) error {
	query := `
		UPDATE users
		SET completed_sessions = completed_sessions + 1, total_spent = total_spent + $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, spent, userID)
	if err != nil {
		zap.L().Error("can't update session stats", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddFavorite(ctx context.Context, userID, tutorID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO favorite_tutors (user_id, tutor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, tutorID,
	)
	if err != nil {
		zap.L().Error("can't add favorite", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID, tutorID int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM favorite_tutors WHERE user_id = $1 AND tutor_id = $2`,
		userID, tutorID,
	)
	if err != nil {
		zap.L().Error("can't remove favorite", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetFavorites(ctx context.Context, userID int) ([]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tutor_id FROM favorite_tutors WHERE user_id = $1 ORDER BY tutor_id`,
		userID,
	)
	if err != nil {
		zap.L().Error("can't get favorites", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan favorite row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
