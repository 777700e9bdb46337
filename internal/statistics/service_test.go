package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
)

type stubStatsRepo struct {
	totalOrders int64
	byStatus    []StatusCount
	byMonth     []MonthlyCount
	customers   int64
	blacklisted int64
	fleet       FleetSummary
	err         error
	sinceSeen   time.Time
}

func (s *stubStatsRepo) CountOrders(ctx context.Context) (int64, error) {
	return s.totalOrders, s.err
}

func (s *stubStatsRepo) CountOrdersByStatus(ctx context.Context) ([]StatusCount, error) {
	return s.byStatus, s.err
}

func (s *stubStatsRepo) CountOrdersByMonth(ctx context.Context, since time.Time) ([]MonthlyCount, error) {
	s.sinceSeen = since
	return s.byMonth, s.err
}

func (s *stubStatsRepo) CountCustomers(ctx context.Context) (int64, int64, error) {
	return s.customers, s.blacklisted, s.err
}

func (s *stubStatsRepo) FleetSummary(ctx context.Context, warningBefore time.Time) (FleetSummary, error) {
	return s.fleet, s.err
}

func TestDashboardMergesAggregates(t *testing.T) {
	repo := &stubStatsRepo{
		totalOrders: 42,
		byStatus: []StatusCount{
			{Status: enums.TripStatusOffer, Count: 10},
			{Status: enums.TripStatusInTransit, Count: 5},
			{Status: enums.TripStatusInCustoms, Count: 2},
			{Status: enums.TripStatusCompleted, Count: 25},
		},
		byMonth:     []MonthlyCount{{Month: "2026-07", Count: 8}},
		customers:   30,
		blacklisted: 3,
		fleet:       FleetSummary{ActiveDrivers: 12, ActiveVehicles: 9},
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	dashboard, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.TotalOrders != 42 {
		t.Fatalf("expected 42 orders, got %d", dashboard.TotalOrders)
	}
	if dashboard.OpenOffers != 10 {
		t.Fatalf("expected 10 open offers, got %d", dashboard.OpenOffers)
	}
	if dashboard.InTransit != 7 {
		t.Fatalf("expected 7 in transit, got %d", dashboard.InTransit)
	}
	if dashboard.Blacklisted != 3 {
		t.Fatalf("expected 3 blacklisted, got %d", dashboard.Blacklisted)
	}
	if dashboard.Fleet.ActiveDrivers != 12 {
		t.Fatalf("expected 12 active drivers, got %d", dashboard.Fleet.ActiveDrivers)
	}
	if len(dashboard.OrdersByMonth) != 1 {
		t.Fatalf("expected one month row, got %d", len(dashboard.OrdersByMonth))
	}
}

func TestDashboardPropagatesFailure(t *testing.T) {
	repo := &stubStatsRepo{err: errors.New("connection reset")}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Dashboard(context.Background())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil repository")
	}
}
