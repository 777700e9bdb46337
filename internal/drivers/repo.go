package drivers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

// Repository exposes driver persistence operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	FindByLicenseNo(ctx context.Context, licenseNo string) (*models.Driver, error)
	List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Driver, error)
	ListWithExpiredDocuments(ctx context.Context, now time.Time) ([]models.Driver, error)
	Update(ctx context.Context, driver *models.Driver) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a drivers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *repository) FindByLicenseNo(ctx context.Context, licenseNo string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Where("license_no = ?", licenseNo).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Driver, error) {
	query := r.db.WithContext(ctx).Model(&models.Driver{})

	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(license_no) LIKE ?",
			like, like, like,
		)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Driver
	err = query.
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListWithExpiredDocuments(ctx context.Context, now time.Time) ([]models.Driver, error) {
	var rows []models.Driver
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			"passport_expiry < ? OR visa_expiry < ? OR residence_permit_expiry < ?",
			now, now, now,
		).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Driver{}).
		Where("id = ?", id).
		UpdateColumn("is_active", false).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Driver{}, "id = ?", id).Error
}
