package drivers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

// Service defines the driver management surface.
type Service interface {
	Create(ctx context.Context, input CreateDriverInput) (*DriverDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DriverDTO, error)
	GetByLicenseNo(ctx context.Context, licenseNo string) (*DriverDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*DriverList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateDriverInput) (*DriverDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a driver service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("drivers repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateDriverInput) (*DriverDTO, error) {
	driver := &models.Driver{
		FirstName:             strings.TrimSpace(input.FirstName),
		LastName:              strings.TrimSpace(input.LastName),
		LicenseNo:             strings.ToUpper(strings.TrimSpace(input.LicenseNo)),
		Phone:                 strings.TrimSpace(input.Phone),
		IsActive:              true,
		PassportExpiry:        input.PassportExpiry,
		VisaExpiry:            input.VisaExpiry,
		ResidencePermitExpiry: input.ResidencePermitExpiry,
	}

	created, err := s.repo.Create(ctx, driver)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "license number already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create driver")
	}
	return FromModel(created, s.now().UTC()), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*DriverDTO, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "driver not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load driver")
	}
	return FromModel(driver, s.now().UTC()), nil
}

func (s *service) GetByLicenseNo(ctx context.Context, licenseNo string) (*DriverDTO, error) {
	driver, err := s.repo.FindByLicenseNo(ctx, strings.ToUpper(strings.TrimSpace(licenseNo)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "driver not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load driver")
	}
	return FromModel(driver, s.now().UTC()), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*DriverList, error) {
	rows, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list drivers")
	}

	now := s.now().UTC()
	limit := pagination.NormalizeLimit(params.Limit)
	list := &DriverList{Drivers: make([]DriverDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			list.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		list.Drivers = append(list.Drivers, *FromModel(&rows[i], now))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateDriverInput) (*DriverDTO, error) {
	driver, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "driver not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load driver")
	}

	if input.FirstName != nil {
		driver.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		driver.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		driver.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.IsActive != nil {
		driver.IsActive = *input.IsActive
	}
	if input.PassportExpiry != nil {
		driver.PassportExpiry = input.PassportExpiry
	}
	if input.VisaExpiry != nil {
		driver.VisaExpiry = input.VisaExpiry
	}
	if input.ResidencePermitExpiry != nil {
		driver.ResidencePermitExpiry = input.ResidencePermitExpiry
	}

	if err := s.repo.Update(ctx, driver); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update driver")
	}
	return FromModel(driver, s.now().UTC()), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete driver")
	}
	return nil
}
