package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rahulj/sdms/internal/app/models"
	"github.com/rahulj/sdms/internal/pkg/apperrors"
)

const feeColumns = "id, student_id, fee_type, amount, due_date, paid_date, payment_method, transaction_id, status, created_at"

// FeeRepository handles database operations for fee rows
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

// Create creates a new fee row
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, fee_type, amount, due_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.StudentID, fee.FeeType, fee.Amount, fee.DueDate, fee.Status).
		Scan(&fee.ID, &fee.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// GetByID retrieves a fee row by ID
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	var fee models.Fee
	err := r.db.QueryRow(ctx, `
		SELECT `+feeColumns+` FROM fees WHERE id = $1`, id).Scan(
		&fee.ID, &fee.StudentID, &fee.FeeType, &fee.Amount, &fee.DueDate,
		&fee.PaidDate, &fee.PaymentMethod, &fee.TransactionID, &fee.Status, &fee.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return &fee, nil
}

// ListByStudent retrieves all fee rows for one student
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+feeColumns+` FROM fees WHERE student_id = $1 ORDER BY due_date NULLS LAST, id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.FeeType, &fee.Amount, &fee.DueDate,
			&fee.PaidDate, &fee.PaymentMethod, &fee.TransactionID, &fee.Status, &fee.CreatedAt); err != nil {
			return nil, err
		}
		fees = append(fees, &fee)
	}

	return fees, rows.Err()
}

// MarkPaid settles a fee row with a payment method and transaction id
func (r *FeeRepository) MarkPaid(ctx context.Context, id int64, method models.PaymentMethod, transactionID string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE fees
		SET status = $2, paid_date = CURRENT_DATE, payment_method = $3, transaction_id = $4
		WHERE id = $1`,
		id, models.FeePaid, method, transactionID)
	if err != nil {
		return fmt.Errorf("error marking fee paid: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}

// PendingTotal sums unpaid fee amounts across all students
func (r *FeeRepository) PendingTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM fees WHERE status != $1`,
		models.FeePaid).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing pending fees: %w", err)
	}
	return total, nil
}
