package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/internal/customers"
	"github.com/rotalog/rotalog-backend/internal/drivers"
	"github.com/rotalog/rotalog-backend/internal/expiry"
	"github.com/rotalog/rotalog-backend/internal/trailers"
	"github.com/rotalog/rotalog-backend/internal/users"
	"github.com/rotalog/rotalog-backend/internal/vehicles"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
)

type customerGate struct {
	repo customers.Repository
}

// NewCustomerGate adapts the customers repository to the gate checks the
// order service performs before opening an offer.
func NewCustomerGate(repo customers.Repository) CustomerGate {
	return &customerGate{repo: repo}
}

func (g *customerGate) FindGateFields(ctx context.Context, id uuid.UUID) (*enums.RiskStatus, bool, error) {
	customer, err := g.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return customer.RiskStatus, customer.Blacklisted, nil
}

type userDirectory struct {
	repo users.Repository
}

// NewUserDirectory adapts the users repository to the existence check run
// before an order slot is claimed.
func NewUserDirectory(repo users.Repository) UserDirectory {
	return &userDirectory{repo: repo}
}

func (d *userDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := d.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type fleetResources struct {
	vehicles vehicles.Repository
	trailers trailers.Repository
	drivers  drivers.Repository
}

// NewFleetResources adapts the resource repositories to the per-step
// checks the assignment saga runs.
func NewFleetResources(v vehicles.Repository, t trailers.Repository, d drivers.Repository) FleetResources {
	return &fleetResources{vehicles: v, trailers: t, drivers: d}
}

func (f *fleetResources) VehicleAssignable(ctx context.Context, id uuid.UUID, now time.Time) error {
	vehicle, err := f.vehicles.FindByID(ctx, id)
	if err != nil {
		return resourceLoadError(err, "vehicle")
	}
	if !vehicle.IsActive {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle is inactive")
	}
	if expiry.IsExpired(vehicle.InsuranceExpiry, now) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle insurance has expired")
	}
	if expiry.IsExpired(vehicle.InspectionExpiry, now) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "vehicle inspection has expired")
	}
	return nil
}

func (f *fleetResources) TrailerAssignable(ctx context.Context, id uuid.UUID) error {
	trailer, err := f.trailers.FindByID(ctx, id)
	if err != nil {
		return resourceLoadError(err, "trailer")
	}
	if !trailer.IsActive {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "trailer is inactive")
	}
	return nil
}

func (f *fleetResources) DriverAssignable(ctx context.Context, id uuid.UUID, now time.Time) error {
	driver, err := f.drivers.FindByID(ctx, id)
	if err != nil {
		return resourceLoadError(err, "driver")
	}
	if !driver.IsActive {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "driver is inactive")
	}
	if expiry.IsExpired(driver.PassportExpiry, now) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "driver passport has expired")
	}
	if expiry.IsExpired(driver.VisaExpiry, now) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "driver visa has expired")
	}
	if expiry.IsExpired(driver.ResidencePermitExpiry, now) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "driver residence permit has expired")
	}
	return nil
}

func resourceLoadError(err error, noun string) error {
	if pkgerrors.As(err) != nil {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, noun+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+noun)
}
