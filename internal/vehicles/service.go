package vehicles

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

// Service defines the vehicle management surface.
type Service interface {
	Create(ctx context.Context, input CreateVehicleInput) (*VehicleDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleDTO, error)
	GetByPlate(ctx context.Context, plate string) (*VehicleDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*VehicleList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*VehicleDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a vehicle service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vehicles repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), " "))
}

func (s *service) Create(ctx context.Context, input CreateVehicleInput) (*VehicleDTO, error) {
	vehicle := &models.Vehicle{
		Plate:            normalizePlate(input.Plate),
		VIN:              strings.TrimSpace(input.VIN),
		Brand:            strings.TrimSpace(input.Brand),
		Model:            strings.TrimSpace(input.Model),
		Year:             input.Year,
		CapacityKg:       input.CapacityKg,
		IsActive:         true,
		InsuranceExpiry:  input.InsuranceExpiry,
		InspectionExpiry: input.InspectionExpiry,
	}

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "plate already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create vehicle")
	}
	return FromModel(created, s.now().UTC()), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vehicle")
	}
	return FromModel(vehicle, s.now().UTC()), nil
}

func (s *service) GetByPlate(ctx context.Context, plate string) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByPlate(ctx, normalizePlate(plate))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vehicle")
	}
	return FromModel(vehicle, s.now().UTC()), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*VehicleList, error) {
	rows, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vehicles")
	}

	now := s.now().UTC()
	limit := pagination.NormalizeLimit(params.Limit)
	list := &VehicleList{Vehicles: make([]VehicleDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			list.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		list.Vehicles = append(list.Vehicles, *FromModel(&rows[i], now))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vehicle")
	}

	if input.VIN != nil {
		vehicle.VIN = strings.TrimSpace(*input.VIN)
	}
	if input.Brand != nil {
		vehicle.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Model != nil {
		vehicle.Model = strings.TrimSpace(*input.Model)
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.CapacityKg != nil {
		vehicle.CapacityKg = *input.CapacityKg
	}
	if input.IsActive != nil {
		vehicle.IsActive = *input.IsActive
	}
	if input.InsuranceExpiry != nil {
		vehicle.InsuranceExpiry = input.InsuranceExpiry
	}
	if input.InspectionExpiry != nil {
		vehicle.InspectionExpiry = input.InspectionExpiry
	}

	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update vehicle")
	}
	return FromModel(vehicle, s.now().UTC()), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete vehicle")
	}
	return nil
}
