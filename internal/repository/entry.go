package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/gcordner/chargeguard/internal/model"
	"github.com/gcordner/chargeguard/pkg/db/transactor"
)

// EntryRepository is the watchlist entry store. FindAll returns entries in
// stored order - screening iterates them exactly as returned. Mutations
// address entries by their stable id; unknown ids are skipped silently,
// since the admin surface re-derives the visible list on every render.
type EntryRepository interface {
	FindAll(context.Context) ([]*model.Entry, error)
	FindByID(context.Context, string) (*model.Entry, error)
	Create(context.Context, *model.Entry) error
	SetDisabled(ctx context.Context, id string, disabled bool) (bool, error)
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

type postgresEntryRepository struct {
	e transactor.PgxWithinTransactionExecutor
}

func NewPostgresEntryRepository(e transactor.PgxWithinTransactionExecutor) EntryRepository {
	return &postgresEntryRepository{e: e}
}

func (r *postgresEntryRepository) FindAll(ctx context.Context) ([]*model.Entry, error) {
	entries := make([]*model.Entry, 0)
	q := `SELECT id, first_name, last_name, street_address, email, phone, status, disabled, created_at
            FROM watchlist_entries ORDER BY position`

	rows, err := r.e.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *postgresEntryRepository) FindByID(ctx context.Context, id string) (*model.Entry, error) {
	q := `SELECT id, first_name, last_name, street_address, email, phone, status, disabled, created_at
            FROM watchlist_entries WHERE id = $1`

	row := r.e.Executor(ctx).QueryRow(ctx, q, id)
	e, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresEntryRepository) Create(ctx context.Context, e *model.Entry) error {
	q := `INSERT INTO watchlist_entries(id, first_name, last_name, street_address, email, phone, status, disabled, created_at)
               VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.e.Executor(ctx).Exec(ctx, q,
		e.ID, e.FirstName, e.LastName, e.StreetAddress, e.Email, e.Phone, e.Status, e.Disabled, e.CreatedAt,
	)
	if err != nil {
		return err
	}
	return nil
}

func (r *postgresEntryRepository) SetDisabled(ctx context.Context, id string, disabled bool) (bool, error) {
	q := "UPDATE watchlist_entries SET disabled = $1 WHERE id = $2"
	comm, err := r.e.Executor(ctx).Exec(ctx, q, disabled, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresEntryRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	q := "DELETE FROM watchlist_entries WHERE id = ANY($1)"
	comm, err := r.e.Executor(ctx).Exec(ctx, q, ids)
	if err != nil {
		return 0, err
	}
	return comm.RowsAffected(), nil
}

func (r *postgresEntryRepository) scan(row pgx.Row) (*model.Entry, error) {
	var e model.Entry
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.StreetAddress, &e.Email, &e.Phone, &e.Status, &e.Disabled, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
