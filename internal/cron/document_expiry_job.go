package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/logger"
)

type driverDocumentStore interface {
	ListWithExpiredDocuments(ctx context.Context, now time.Time) ([]models.Driver, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type vehicleDocumentStore interface {
	ListWithExpiredDocuments(ctx context.Context, now time.Time) ([]models.Vehicle, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// DocumentExpiryJobParams configure the document expiry sweep.
type DocumentExpiryJobParams struct {
	Logger   *logger.Logger
	Drivers  driverDocumentStore
	Vehicles vehicleDocumentStore
}

// NewDocumentExpiryJob builds the cron job that benches drivers and vehicles
// whose paperwork has lapsed.
func NewDocumentExpiryJob(params DocumentExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Drivers == nil {
		return nil, fmt.Errorf("drivers store required")
	}
	if params.Vehicles == nil {
		return nil, fmt.Errorf("vehicles store required")
	}
	return &documentExpiryJob{
		logg:     params.Logger,
		drivers:  params.Drivers,
		vehicles: params.Vehicles,
		now:      time.Now,
	}, nil
}

type documentExpiryJob struct {
	logg     *logger.Logger
	drivers  driverDocumentStore
	vehicles vehicleDocumentStore
	now      func() time.Time
}

func (j *documentExpiryJob) Name() string { return "document-expiry" }

func (j *documentExpiryJob) Run(ctx context.Context) error {
	var errs []error
	if err := j.benchDrivers(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := j.benchVehicles(ctx); err != nil {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

func (j *documentExpiryJob) benchDrivers(ctx context.Context) error {
	now := j.now().UTC()
	drivers, err := j.drivers.ListWithExpiredDocuments(ctx, now)
	if err != nil {
		return fmt.Errorf("query drivers with expired documents: %w", err)
	}
	count := 0
	for _, driver := range drivers {
		if err := j.drivers.Deactivate(ctx, driver.ID); err != nil {
			return fmt.Errorf("deactivate driver %s: %w", driver.ID, err)
		}
		rowCtx := j.logg.WithFields(ctx, map[string]any{
			"driver_id":  driver.ID.String(),
			"license_no": driver.LicenseNo,
		})
		j.logg.Warn(rowCtx, "driver benched for expired documents")
		count++
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{"count": count})
	j.logg.Info(logCtx, "driver document sweep complete")
	return nil
}

func (j *documentExpiryJob) benchVehicles(ctx context.Context) error {
	now := j.now().UTC()
	vehicles, err := j.vehicles.ListWithExpiredDocuments(ctx, now)
	if err != nil {
		return fmt.Errorf("query vehicles with expired documents: %w", err)
	}
	count := 0
	for _, vehicle := range vehicles {
		if err := j.vehicles.Deactivate(ctx, vehicle.ID); err != nil {
			return fmt.Errorf("deactivate vehicle %s: %w", vehicle.ID, err)
		}
		rowCtx := j.logg.WithFields(ctx, map[string]any{
			"vehicle_id": vehicle.ID.String(),
			"plate":      vehicle.Plate,
		})
		j.logg.Warn(rowCtx, "vehicle benched for expired documents")
		count++
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{"count": count})
	j.logg.Info(logCtx, "vehicle document sweep complete")
	return nil
}
