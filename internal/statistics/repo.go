package statistics

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
)

// Repository exposes the aggregate queries behind the dashboard.
type Repository interface {
	CountOrders(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context) ([]StatusCount, error)
	CountOrdersByMonth(ctx context.Context, since time.Time) ([]MonthlyCount, error)
	CountCustomers(ctx context.Context) (total int64, blacklisted int64, err error)
	FleetSummary(ctx context.Context, warningBefore time.Time) (FleetSummary, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a statistics repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *repository) CountOrdersByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("trip_status AS status, COUNT(*) AS count").
		Group("trip_status").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountOrdersByMonth(ctx context.Context, since time.Time) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("month").
		Order("month ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountCustomers(ctx context.Context) (int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var blacklisted int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("blacklisted = ? OR risk_status = ?", true, enums.RiskStatusBlacklist).
		Count(&blacklisted).Error
	return total, blacklisted, err
}

func (r *repository) FleetSummary(ctx context.Context, warningBefore time.Time) (FleetSummary, error) {
	var summary FleetSummary

	if err := r.db.WithContext(ctx).Model(&models.Driver{}).
		Where("is_active = ?", true).Count(&summary.ActiveDrivers).Error; err != nil {
		return summary, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("is_active = ?", true).Count(&summary.ActiveVehicles).Error; err != nil {
		return summary, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Trailer{}).
		Where("is_active = ?", true).Count(&summary.ActiveTrailers).Error; err != nil {
		return summary, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Driver{}).
		Where("is_active = ?", true).
		Where("passport_expiry < ? OR visa_expiry < ? OR residence_permit_expiry < ?",
			warningBefore, warningBefore, warningBefore).
		Count(&summary.DriversWithExpiringDocs).Error; err != nil {
		return summary, err
	}
	err := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("is_active = ?", true).
		Where("insurance_expiry < ? OR inspection_expiry < ?", warningBefore, warningBefore).
		Count(&summary.VehiclesWithExpiringDocs).Error
	return summary, err
}
