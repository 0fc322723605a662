package repository

import (
	"context"

	"github.com/gcordner/chargeguard/internal/model"
	"github.com/gcordner/chargeguard/pkg/db/transactor"
)

// transactionalEntryRepository runs every mutation of the wrapped repository
// within a database transaction propagated through the context. Reads pass
// through untouched.
type transactionalEntryRepository struct {
	rps EntryRepository
	trx transactor.Transactor
}

func NewTransactionalEntryRepository(rps EntryRepository, trx transactor.Transactor) EntryRepository {
	return &transactionalEntryRepository{rps: rps, trx: trx}
}

func (r *transactionalEntryRepository) FindAll(ctx context.Context) ([]*model.Entry, error) {
	return r.rps.FindAll(ctx)
}

func (r *transactionalEntryRepository) FindByID(ctx context.Context, id string) (*model.Entry, error) {
	return r.rps.FindByID(ctx, id)
}

func (r *transactionalEntryRepository) Create(ctx context.Context, e *model.Entry) error {
	return r.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		return r.rps.Create(ctx, e)
	})
}

func (r *transactionalEntryRepository) SetDisabled(ctx context.Context, id string, disabled bool) (bool, error) {
	var found bool
	err := r.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		found, err = r.rps.SetDisabled(ctx, id, disabled)
		return err
	})
	return found, err
}

func (r *transactionalEntryRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	err := r.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = r.rps.DeleteByIDs(ctx, ids)
		return err
	})
	return deleted, err
}
