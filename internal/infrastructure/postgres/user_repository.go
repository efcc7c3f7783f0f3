package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhasfinancas/api/internal/domain/entity"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	stored := *u
	if stored.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO users (name, email, password)
			VALUES ($1, $2, $3)
			RETURNING id, registration_date
		`, stored.Name, stored.Email, stored.Password)
		if err := row.Scan(&stored.ID, &stored.RegistrationDate); err != nil {
			return nil, mapUniqueViolation(err)
		}
		return &stored, nil
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE users SET name = $1, email = $2, password = $3
		WHERE id = $4
	`, stored.Name, stored.Email, stored.Password, stored.ID)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return nil, repo.ErrNotFound
	}
	return &stored, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, registration_date
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password, registration_date
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.RegistrationDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// mapUniqueViolation turns a hit on users_email_key into the repository
// sentinel so callers do not depend on postgres error codes.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repo.ErrDuplicateEmail
	}
	return err
}

var _ repo.UserRepository = (*UserRepository)(nil)
