package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thanawiyapro/tutormarket/internal/domain"
	"github.com/thanawiyapro/tutormarket/internal/pg"
)

const paymentColumns = `p.id, p.user_id, p.booking_id, p.type, p.amount, p.method, p.status,
       p.transaction_id, p.transaction_proof, p.rejection_reason, p.description, p.created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.BookingID, &p.Type, &p.Amount, &p.Method, &p.Status,
		&p.TransactionID, &p.TransactionProof, &p.RejectionReason, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1`
	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (user_id, booking_id, type, amount, method, status,
		                      transaction_id, transaction_proof, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		payment.UserID, payment.BookingID, payment.Type, payment.Amount, payment.Method,
		payment.Status, payment.TransactionID, payment.TransactionProof, payment.Description,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status, rejectionReason string) error {
	query := `UPDATE payments SET status = $1, rejection_reason = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, status, rejectionReason, id)
	if err != nil {
		zap.L().Error("can't update payment status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentDetail, error) {
	query := `
		SELECT ` + paymentColumns + `,
		       u.id, u.name, u.email, u.phone, u.avatar
		FROM payments p
		JOIN users u ON u.id = p.user_id
		WHERE 1=1`
	args := []any{}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(" AND p.user_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND p.type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PaymentDetail
	for rows.Next() {
		var pd domain.PaymentDetail
		err := rows.Scan(
			&pd.ID, &pd.UserID, &pd.BookingID, &pd.Type, &pd.Amount, &pd.Method, &pd.Status,
			&pd.TransactionID, &pd.TransactionProof, &pd.RejectionReason, &pd.Description, &pd.CreatedAt,
			&pd.User.ID, &pd.User.Name, &pd.User.Email, &pd.User.Phone, &pd.User.Avatar,
		)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, pd)
	}
	return payments, nil
}
