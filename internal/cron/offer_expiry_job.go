package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/logger"
)

const offerGraceDays = 7

type staleOfferStore interface {
	ListStaleOffers(ctx context.Context, cutoff time.Time) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.TripStatus) (bool, error)
}

// OfferExpiryJobParams configure the stale offer sweep.
type OfferExpiryJobParams struct {
	Logger *logger.Logger
	Orders staleOfferStore
}

// NewOfferExpiryJob builds the cron job that cancels offers whose deadline
// passed without approval.
func NewOfferExpiryJob(params OfferExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders store required")
	}
	return &offerExpiryJob{
		logg:   params.Logger,
		orders: params.Orders,
		now:    time.Now,
	}, nil
}

type offerExpiryJob struct {
	logg   *logger.Logger
	orders staleOfferStore
	now    func() time.Time
}

func (j *offerExpiryJob) Name() string { return "offer-expiry" }

func (j *offerExpiryJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-offerGraceDays * 24 * time.Hour)
	offers, err := j.orders.ListStaleOffers(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("query stale offers: %w", err)
	}
	count := 0
	for _, offer := range offers {
		// The conditional update keeps a concurrently approved offer alive.
		cancelled, err := j.orders.UpdateStatus(ctx, offer.ID, enums.TripStatusOffer, enums.TripStatusCancelled)
		if err != nil {
			return fmt.Errorf("cancel offer %s: %w", offer.ID, err)
		}
		if !cancelled {
			continue
		}
		rowCtx := j.logg.WithFields(ctx, map[string]any{
			"order_id":     offer.ID.String(),
			"order_number": offer.OrderNumber,
		})
		j.logg.Info(rowCtx, "stale offer cancelled")
		count++
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{"count": count})
	j.logg.Info(logCtx, "offer expiry sweep complete")
	return nil
}
