package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"

	"github.com/lib/pq"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db,
	}
}

// CreateUser inserts the record and fills in the generated id. The unique
// index on email is the real uniqueness guarantee; the service-level check
// is only a pre-check, so 23505 is classified the same way here.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (first_name, last_name, date_of_birth, email, password, sex, country, phone_number, enabled, locked)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Email,
		user.Password,
		user.Sex,
		user.Country,
		user.PhoneNumber,
		user.Enabled,
		user.Locked,
	).Scan(&user.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return nil, domain.NewBadRequestError(domain.CodeUserAlreadyExists,
					fmt.Sprintf("Email [%s] already exists.", user.Email))
			case "23502":
				return nil, fmt.Errorf("required field is missing: %w", err)
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, date_of_birth, email, password, sex, country, phone_number, enabled, locked
              FROM users WHERE id = $1`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Email,
		&user.Password,
		&user.Sex,
		&user.Country,
		&user.PhoneNumber,
		&user.Enabled,
		&user.Locked,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, date_of_birth, email, password, sex, country, phone_number, enabled, locked
              FROM users WHERE email = $1`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Email,
		&user.Password,
		&user.Sex,
		&user.Country,
		&user.PhoneNumber,
		&user.Enabled,
		&user.Locked,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
