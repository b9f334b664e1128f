package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-admin-service/internal/domain"
)

// StudentRepository handles persistence for student records.
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository instantiates the repository.
func NewStudentRepository(pool *pgxpool.Pool) StudentRepository {
	return &studentRepository{pool: pool}
}

const studentColumns = `id, full_name, date_of_birth, class_name, division, address, gender, guardian, phone, state, district, pincode, academic_year, admission_date, created_at, updated_at`

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	const query = `
        INSERT INTO students (full_name, date_of_birth, class_name, division, address, gender, guardian, phone, state, district, pincode, academic_year, admission_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		student.FullName,
		student.DateOfBirth,
		student.ClassName,
		student.Division,
		student.Address,
		student.Gender,
		student.Guardian,
		student.Phone,
		student.State,
		student.District,
		student.Pincode,
		student.AcademicYear,
		student.AdmissionDate,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func (r *studentRepository) Update(ctx context.Context, student *domain.Student) error {
	const query = `
        UPDATE students
        SET full_name=$1, date_of_birth=$2, class_name=$3, division=$4, address=$5, gender=$6, guardian=$7, phone=$8, state=$9, district=$10, pincode=$11, academic_year=$12, admission_date=$13, updated_at=NOW()
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		student.FullName,
		student.DateOfBirth,
		student.ClassName,
		student.Division,
		student.Address,
		student.Gender,
		student.Guardian,
		student.Phone,
		student.State,
		student.District,
		student.Pincode,
		student.AcademicYear,
		student.AdmissionDate,
		student.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id=$1`

	var student domain.Student
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FullName,
		&student.DateOfBirth,
		&student.ClassName,
		&student.Division,
		&student.Address,
		&student.Gender,
		&student.Guardian,
		&student.Phone,
		&student.State,
		&student.District,
		&student.Pincode,
		&student.AcademicYear,
		&student.AdmissionDate,
		&student.CreatedAt,
		&student.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Student
	for rows.Next() {
		var student domain.Student
		if err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.DateOfBirth,
			&student.ClassName,
			&student.Division,
			&student.Address,
			&student.Gender,
			&student.Guardian,
			&student.Phone,
			&student.State,
			&student.District,
			&student.Pincode,
			&student.AcademicYear,
			&student.AdmissionDate,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, student)
	}
	return result, rows.Err()
}

func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	// History rows cascade via FK.
	cmd, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
