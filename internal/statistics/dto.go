package statistics

import "github.com/rotalog/rotalog-backend/pkg/enums"

// StatusCount is one slice of the orders-by-status breakdown.
type StatusCount struct {
	Status enums.TripStatus `json:"status"`
	Count  int64            `json:"count"`
}

// MonthlyCount is one month of order volume, keyed YYYY-MM.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// FleetSummary aggregates the resource pool and its paperwork health.
type FleetSummary struct {
	ActiveDrivers            int64 `json:"active_drivers"`
	ActiveVehicles           int64 `json:"active_vehicles"`
	ActiveTrailers           int64 `json:"active_trailers"`
	DriversWithExpiringDocs  int64 `json:"drivers_with_expiring_docs"`
	VehiclesWithExpiringDocs int64 `json:"vehicles_with_expiring_docs"`
}

// Dashboard is the full statistics payload served to the admin screen.
type Dashboard struct {
	TotalOrders    int64          `json:"total_orders"`
	OpenOffers     int64          `json:"open_offers"`
	InTransit      int64          `json:"in_transit"`
	OrdersByStatus []StatusCount  `json:"orders_by_status"`
	OrdersByMonth  []MonthlyCount `json:"orders_by_month"`
	TotalCustomers int64          `json:"total_customers"`
	Blacklisted    int64          `json:"blacklisted_customers"`
	Fleet          FleetSummary   `json:"fleet"`
}
