package statistics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rotalog/rotalog-backend/internal/expiry"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
)

// monthsBack bounds the volume chart.
const monthsBack = 12

// Service assembles the dashboard payload.
type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a statistics service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("statistics repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// Dashboard fans the aggregate queries out concurrently; the first failure
// cancels the rest.
func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now().UTC()
	since := now.AddDate(0, -monthsBack, 0)
	warningBefore := now.Add(expiry.WarningWindow)

	var dashboard Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.repo.CountOrders(ctx)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		dashboard.TotalOrders = total
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.CountOrdersByStatus(ctx)
		if err != nil {
			return fmt.Errorf("orders by status: %w", err)
		}
		dashboard.OrdersByStatus = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.CountOrdersByMonth(ctx, since)
		if err != nil {
			return fmt.Errorf("orders by month: %w", err)
		}
		dashboard.OrdersByMonth = rows
		return nil
	})
	g.Go(func() error {
		total, blacklisted, err := s.repo.CountCustomers(ctx)
		if err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		dashboard.TotalCustomers = total
		dashboard.Blacklisted = blacklisted
		return nil
	})
	g.Go(func() error {
		summary, err := s.repo.FleetSummary(ctx, warningBefore)
		if err != nil {
			return fmt.Errorf("fleet summary: %w", err)
		}
		dashboard.Fleet = summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build dashboard")
	}

	for _, row := range dashboard.OrdersByStatus {
		switch {
		case row.Status.IsTransit():
			dashboard.InTransit += row.Count
		case row.Status == enums.TripStatusOffer:
			dashboard.OpenOffers = row.Count
		}
	}
	return &dashboard, nil
}
