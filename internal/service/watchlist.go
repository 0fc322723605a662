package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gcordner/chargeguard/internal/cache"
	"github.com/gcordner/chargeguard/internal/model"
	"github.com/gcordner/chargeguard/internal/repository"
)

// WatchlistService exposes the admin operations on the watchlist and the
// cached read path screening evaluates against.
type WatchlistService interface {
	FindAll(context.Context) ([]*model.Entry, error)
	Create(context.Context, *model.Entry) (*model.Entry, error)
	SetDisabled(ctx context.Context, id string, disabled bool) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

type watchlistService struct {
	entryRps   repository.EntryRepository
	entryCache cache.WatchlistCache
}

func NewWatchlistService(entryRps repository.EntryRepository, entryCache cache.WatchlistCache) WatchlistService {
	return &watchlistService{entryRps: entryRps, entryCache: entryCache}
}

func (s *watchlistService) FindAll(ctx context.Context) ([]*model.Entry, error) {
	cached, err := s.entryCache.Entries(ctx)
	if err != nil {
		logrus.Warnf("failed to read watchlist from cache, falling back to store - %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	entries, err := s.entryRps.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.entryCache.Put(ctx, entries); err != nil {
		logrus.Warnf("failed to cache watchlist snapshot - %v", err)
	}
	return entries, nil
}

func (s *watchlistService) Create(ctx context.Context, e *model.Entry) (*model.Entry, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	e.Disabled = false // new entries participate in matching
	s.trimFields(e)

	if err := s.entryRps.Create(ctx, e); err != nil {
		return nil, err
	}

	s.evictSnapshot(ctx)
	return e, nil
}

func (s *watchlistService) SetDisabled(ctx context.Context, id string, disabled bool) error {
	found, err := s.entryRps.SetDisabled(ctx, id, disabled)
	if err != nil {
		return err
	}

	if !found {
		// Stale admin form referencing an already-deleted entry; the list
		// is re-derived on every render, so this is not an error.
		logrus.Infof("suppression update skipped, entry %s no longer exists", id)
		return nil
	}

	s.evictSnapshot(ctx)
	return nil
}

func (s *watchlistService) DeleteByIDs(ctx context.Context, ids []string) error {
	deleted, err := s.entryRps.DeleteByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if deleted < int64(len(ids)) {
		logrus.Infof("%d of %d entries were already gone on delete", int64(len(ids))-deleted, len(ids))
	}

	s.evictSnapshot(ctx)
	return nil
}

// evictSnapshot drops the cached watchlist after a mutation. The mutation is
// already durable at this point, so a failed eviction only leaves a stale
// snapshot behind until the cache TTL expires; it is not an error toward
// the caller.
func (s *watchlistService) evictSnapshot(ctx context.Context) {
	if err := s.entryCache.Evict(ctx); err != nil {
		logrus.Warnf("failed to evict watchlist snapshot - %v", err)
	}
}

func (s *watchlistService) trimFields(e *model.Entry) {
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.StreetAddress = strings.TrimSpace(e.StreetAddress)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)
	e.Status = strings.TrimSpace(e.Status)
}
