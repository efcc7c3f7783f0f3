package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhasfinancas/api/internal/domain/entity"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
)

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = "id, description, month, year, value, user_id, type, status, registration_date"

func (r *EntryRepository) Save(ctx context.Context, e *entity.Entry) (*entity.Entry, error) {
	stored := *e
	if stored.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO entries (description, month, year, value, user_id, type, status, registration_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, registration_date
		`, stored.Description, stored.Month, stored.Year, stored.Value,
			stored.UserID, string(stored.Type), string(stored.Status), stored.RegistrationDate)
		if err := row.Scan(&stored.ID, &stored.RegistrationDate); err != nil {
			return nil, err
		}
		return &stored, nil
	}

	// overwrite; id and registration_date stay untouched
	res, err := r.pool.Exec(ctx, `
		UPDATE entries
		SET description = $1, month = $2, year = $3, value = $4, user_id = $5, type = $6, status = $7
		WHERE id = $8
	`, stored.Description, stored.Month, stored.Year, stored.Value,
		stored.UserID, string(stored.Type), string(stored.Status), stored.ID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, repo.ErrNotFound
	}
	return &stored, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id int64) (*entity.Entry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EntryRepository) Delete(ctx context.Context, e *entity.Entry) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// FindMatching compiles the probe into a dynamic WHERE clause. Description
// matches as a case-insensitive substring (ILIKE), the rest by equality.
func (r *EntryRepository) FindMatching(ctx context.Context, f repo.EntryFilter) ([]*entity.Entry, error) {
	conds := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if d := strings.TrimSpace(f.Description); d != "" {
		add("description ILIKE $%d", "%"+d+"%")
	}
	if f.Month != nil {
		add("month = $%d", *f.Month)
	}
	if f.Year != nil {
		add("year = $%d", *f.Year)
	}
	if f.UserID != 0 {
		add("user_id = $%d", f.UserID)
	}
	if f.Type != "" {
		add("type = $%d", string(f.Type))
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}

	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntry(row pgx.Row) (*entity.Entry, error) {
	e := &entity.Entry{}
	var typ, status string
	if err := row.Scan(&e.ID, &e.Description, &e.Month, &e.Year, &e.Value,
		&e.UserID, &typ, &status, &e.RegistrationDate); err != nil {
		return nil, err
	}
	e.Type = entity.EntryType(typ)
	e.Status = entity.EntryStatus(status)
	return e, nil
}

var _ repo.EntryRepository = (*EntryRepository)(nil)
