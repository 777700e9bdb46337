package cron

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/logger"
)

type fakeOfferStore struct {
	offers      []models.Order
	cutoffSeen  time.Time
	cancelled   []uuid.UUID
	updateLands bool
}

func (f *fakeOfferStore) ListStaleOffers(ctx context.Context, cutoff time.Time) ([]models.Order, error) {
	f.cutoffSeen = cutoff
	return f.offers, nil
}

func (f *fakeOfferStore) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to enums.TripStatus) (bool, error) {
	if !f.updateLands {
		return false, nil
	}
	f.cancelled = append(f.cancelled, orderID)
	return true, nil
}

func TestOfferExpiryJobCancelsStaleOffers(t *testing.T) {
	now := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	store := &fakeOfferStore{
		offers:      []models.Order{{ID: uuid.New(), OrderNumber: 100010}},
		updateLands: true,
	}
	job, err := NewOfferExpiryJob(OfferExpiryJobParams{
		Logger: logger.New(logger.Options{ServiceName: "cron-test"}),
		Orders: store,
	})
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}
	job.(*offerExpiryJob).now = func() time.Time { return now }

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.cancelled) != 1 {
		t.Fatalf("expected 1 cancellation, got %d", len(store.cancelled))
	}
	wantCutoff := now.Add(-offerGraceDays * 24 * time.Hour)
	if !store.cutoffSeen.Equal(wantCutoff) {
		t.Fatalf("expected cutoff %s, got %s", wantCutoff, store.cutoffSeen)
	}
}

func TestOfferExpiryJobSkipsConcurrentlyApproved(t *testing.T) {
	store := &fakeOfferStore{
		offers:      []models.Order{{ID: uuid.New()}},
		updateLands: false,
	}
	job, err := NewOfferExpiryJob(OfferExpiryJobParams{
		Logger: logger.New(logger.Options{ServiceName: "cron-test"}),
		Orders: store,
	})
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.cancelled) != 0 {
		t.Fatal("no cancellation should land when the conditional update loses")
	}
}
