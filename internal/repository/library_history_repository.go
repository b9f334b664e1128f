package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-admin-service/internal/domain"
)

// LibraryHistoryRepository handles persistence for borrow/return records.
type LibraryHistoryRepository interface {
	Create(ctx context.Context, record *domain.LibraryHistory) error
	Update(ctx context.Context, record *domain.LibraryHistory) error
	GetByID(ctx context.Context, id int64) (*domain.LibraryHistory, error)
	ListByStudent(ctx context.Context, studentID int64) ([]domain.LibraryHistory, error)
	Delete(ctx context.Context, id int64) error
}

type libraryHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewLibraryHistoryRepository instantiates the repository.
func NewLibraryHistoryRepository(pool *pgxpool.Pool) LibraryHistoryRepository {
	return &libraryHistoryRepository{pool: pool}
}

const libraryColumns = `id, student_id, book_name, book_category, borrow_date, return_date, status, created_at, updated_at`

func (r *libraryHistoryRepository) Create(ctx context.Context, record *domain.LibraryHistory) error {
	const query = `
        INSERT INTO library_history (student_id, book_name, book_category, borrow_date, return_date, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		record.StudentID,
		record.BookName,
		record.BookCategory,
		record.BorrowDate,
		record.ReturnDate,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *libraryHistoryRepository) Update(ctx context.Context, record *domain.LibraryHistory) error {
	const query = `
        UPDATE library_history
        SET book_name=$1, book_category=$2, borrow_date=$3, return_date=$4, status=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		record.BookName,
		record.BookCategory,
		record.BorrowDate,
		record.ReturnDate,
		record.Status,
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

func (r *libraryHistoryRepository) GetByID(ctx context.Context, id int64) (*domain.LibraryHistory, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_history WHERE id=$1`

	var record domain.LibraryHistory
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.StudentID,
		&record.BookName,
		&record.BookCategory,
		&record.BorrowDate,
		&record.ReturnDate,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *libraryHistoryRepository) ListByStudent(ctx context.Context, studentID int64) ([]domain.LibraryHistory, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_history WHERE student_id=$1 ORDER BY borrow_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.LibraryHistory{}
	for rows.Next() {
		var record domain.LibraryHistory
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.BookName,
			&record.BookCategory,
			&record.BorrowDate,
			&record.ReturnDate,
			&record.Status,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *libraryHistoryRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM library_history WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
