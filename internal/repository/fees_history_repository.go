package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-admin-service/internal/domain"
)

// FeesHistoryRepository handles persistence for fee payment records.
type FeesHistoryRepository interface {
	Create(ctx context.Context, record *domain.FeesHistory) error
	Update(ctx context.Context, record *domain.FeesHistory) error
	GetByID(ctx context.Context, id int64) (*domain.FeesHistory, error)
	ListByStudent(ctx context.Context, studentID int64) ([]domain.FeesHistory, error)
	Delete(ctx context.Context, id int64) error
}

type feesHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewFeesHistoryRepository instantiates the repository.
func NewFeesHistoryRepository(pool *pgxpool.Pool) FeesHistoryRepository {
	return &feesHistoryRepository{pool: pool}
}

const feesColumns = `id, student_id, fee_type, academic_year, amount, payment_date, payment_status, remarks, created_at, updated_at`

func (r *feesHistoryRepository) Create(ctx context.Context, record *domain.FeesHistory) error {
	const query = `
        INSERT INTO fees_history (student_id, fee_type, academic_year, amount, payment_date, payment_status, remarks)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		record.StudentID,
		record.FeeType,
		record.AcademicYear,
		record.Amount,
		record.PaymentDate,
		record.PaymentStatus,
		record.Remarks,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *feesHistoryRepository) Update(ctx context.Context, record *domain.FeesHistory) error {
	const query = `
        UPDATE fees_history
        SET fee_type=$1, academic_year=$2, amount=$3, payment_date=$4, payment_status=$5, remarks=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		record.FeeType,
		record.AcademicYear,
		record.Amount,
		record.PaymentDate,
		record.PaymentStatus,
		record.Remarks,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *feesHistoryRepository) GetByID(ctx context.Context, id int64) (*domain.FeesHistory, error) {
	query := `SELECT ` + feesColumns + ` FROM fees_history WHERE id=$1`

	var record domain.FeesHistory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.StudentID,
		&record.FeeType,
		&record.AcademicYear,
		&record.Amount,
		&record.PaymentDate,
		&record.PaymentStatus,
		&record.Remarks,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *feesHistoryRepository) ListByStudent(ctx context.Context, studentID int64) ([]domain.FeesHistory, error) {
	query := `SELECT ` + feesColumns + ` FROM fees_history WHERE student_id=$1 ORDER BY payment_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.FeesHistory{}
	for rows.Next() {
		var record domain.FeesHistory
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.FeeType,
			&record.AcademicYear,
			&record.Amount,
			&record.PaymentDate,
			&record.PaymentStatus,
			&record.Remarks,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *feesHistoryRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM fees_history WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
