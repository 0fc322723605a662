package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	errs "github.com/gcordner/chargeguard/internal/errors"
	"github.com/gcordner/chargeguard/internal/matcher"
	"github.com/gcordner/chargeguard/internal/metrics"
	"github.com/gcordner/chargeguard/internal/model"
	"github.com/gcordner/chargeguard/internal/order"
)

// ScreeningService evaluates a single order against the watchlist and, on a
// match, requests an on-hold transition through the order gateway. Each call
// is independent: the full entry list and one order snapshot go in, nothing
// is remembered across orders, so concurrent calls need no locking.
type ScreeningService interface {
	ScreenOrder(ctx context.Context, orderID string) (matcher.Result, error)
}

type screeningService struct {
	watchlistSvc WatchlistService
	orders       order.Gateway
}

func NewScreeningService(watchlistSvc WatchlistService, orders order.Gateway) ScreeningService {
	return &screeningService{watchlistSvc: watchlistSvc, orders: orders}
}

func (s *screeningService) ScreenOrder(ctx context.Context, orderID string) (matcher.Result, error) {
	start := time.Now()
	metrics.OrdersScreenedTotal.Inc()
	defer func() {
		metrics.ScreeningDuration.Observe(time.Since(start).Seconds())
	}()

	entries, err := s.watchlistSvc.FindAll(ctx)
	if err != nil {
		metrics.ScreeningFailuresTotal.Inc()
		return matcher.Result{}, errs.NewStoreUnavailableErr(err)
	}

	// Empty watchlist: nothing can match, skip the order lookup entirely.
	if len(entries) == 0 {
		return matcher.Result{}, nil
	}

	contact, err := s.orders.OrderContact(ctx, orderID)
	if err != nil {
		metrics.ScreeningFailuresTotal.Inc()
		return matcher.Result{}, err
	}

	res := matcher.Evaluate(contact, entries)
	if !res.Matched {
		return res, nil
	}

	logrus.WithFields(logrus.Fields{
		"orderId": orderID,
		"entryId": res.EntryID,
		"reason":  res.Reason,
	}).Warn("order matched watchlist entry, requesting on-hold transition")
	metrics.OrdersHeldTotal.Inc()

	// Fire and forget: the transition is requested once, not awaited or
	// retried, and a failure never turns a flagged order into an error.
	if err := s.orders.SetStatus(ctx, orderID, model.OrderStatusOnHold); err != nil {
		logrus.Errorf("failed to request on-hold transition for order %s - %v", orderID, err)
	}

	return res, nil
}
