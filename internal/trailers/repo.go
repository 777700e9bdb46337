package trailers

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

// Repository exposes trailer persistence operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, trailer *models.Trailer) (*models.Trailer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Trailer, error)
	List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Trailer, error)
	Update(ctx context.Context, trailer *models.Trailer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a trailers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, trailer *models.Trailer) (*models.Trailer, error) {
	if err := r.db.WithContext(ctx).Create(trailer).Error; err != nil {
		return nil, err
	}
	return trailer, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Trailer, error) {
	var trailer models.Trailer
	if err := r.db.WithContext(ctx).First(&trailer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &trailer, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Trailer, error) {
	query := r.db.WithContext(ctx).Model(&models.Trailer{})

	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(plate) LIKE ? OR LOWER(type) LIKE ?", like, like)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Trailer
	err = query.
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Update(ctx context.Context, trailer *models.Trailer) error {
	return r.db.WithContext(ctx).Save(trailer).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Trailer{}, "id = ?", id).Error
}
