package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/school-admin-service/internal/domain"
)

// AccountRepository defines persistence access for operator accounts and
// their role profiles. Create and Update touch the account row and the
// matching profile row in one transaction.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id int64, hash string, mustChange bool) error
	Delete(ctx context.Context, id int64) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func profileTable(role domain.Role) string {
	switch role {
	case domain.RoleOfficeStaff:
		return "office_staff_profiles"
	case domain.RoleLibrarian:
		return "librarian_profiles"
	}
	return ""
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const accountQuery = `
        INSERT INTO accounts (email, phone, first_name, last_name, role, active, must_change_password, password_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	if err := tx.QueryRow(ctx, accountQuery,
		account.Email,
		account.Phone,
		account.FirstName,
		account.LastName,
		account.Role,
		account.Active,
		account.MustChangePassword,
		account.PasswordHash,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return err
	}

	if table := profileTable(account.Role); table != "" {
		if account.Profile == nil {
			account.Profile = &domain.RoleProfile{Gender: domain.GenderMale, Status: domain.ProfileStatusActive}
		}
		query := `
            INSERT INTO ` + table + ` (account_id, qualification, date_of_birth, address, pincode, gender, about, status, profile_image)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
		if _, err := tx.Exec(ctx, query,
			account.ID,
			account.Profile.Qualification,
			account.Profile.DateOfBirth,
			account.Profile.Address,
			account.Profile.Pincode,
			account.Profile.Gender,
			account.Profile.About,
			account.Profile.Status,
			account.Profile.ProfileImage,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const accountQuery = `
        UPDATE accounts
        SET email=$1, phone=$2, first_name=$3, last_name=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := tx.Exec(ctx, accountQuery,
		account.Email,
		account.Phone,
		account.FirstName,
		account.LastName,
		account.Active,
		account.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if table := profileTable(account.Role); table != "" && account.Profile != nil {
		query := `
            UPDATE ` + table + `
            SET qualification=$1, date_of_birth=$2, address=$3, pincode=$4, gender=$5, about=$6, status=$7, profile_image=$8
            WHERE account_id=$9`
		if _, err := tx.Exec(ctx, query,
			account.Profile.Qualification,
			account.Profile.DateOfBirth,
			account.Profile.Address,
			account.Profile.Pincode,
			account.Profile.Gender,
			account.Profile.About,
			account.Profile.Status,
			account.Profile.ProfileImage,
			account.ID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const accountColumns = `id, email, phone, first_name, last_name, role, active, must_change_password, password_hash, created_at, updated_at`

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return r.fetch(ctx, query, id)
}

func (r *accountRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email=$1 OR phone=$1`
	return r.fetch(ctx, query, identifier)
}

func (r *accountRepository) fetch(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.Phone,
		&account.FirstName,
		&account.LastName,
		&account.Role,
		&account.Active,
		&account.MustChangePassword,
		&account.PasswordHash,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if table := profileTable(account.Role); table != "" {
		profileQuery := `
            SELECT qualification, date_of_birth, address, pincode, gender, about, status, profile_image
            FROM ` + table + ` WHERE account_id=$1`
		var profile domain.RoleProfile
		err := r.pool.QueryRow(ctx, profileQuery, account.ID).Scan(
			&profile.Qualification,
			&profile.DateOfBirth,
			&profile.Address,
			&profile.Pincode,
			&profile.Gender,
			&profile.About,
			&profile.Status,
			&profile.ProfileImage,
		)
		if err != nil && err != pgx.ErrNoRows {
			return nil, err
		}
		if err == nil {
			account.Profile = &profile
		}
	}

	return &account, nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id int64, hash string, mustChange bool) error {
	const query = `
        UPDATE accounts SET password_hash=$1, must_change_password=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, hash, mustChange, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	// Profile rows go with the account via FK cascade.
	cmd, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
