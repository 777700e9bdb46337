package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/internal/drivers"
	"github.com/rotalog/rotalog-backend/internal/trailers"
	"github.com/rotalog/rotalog-backend/internal/vehicles"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
)

// DocumentService renders printable order documents.
type DocumentService interface {
	DriverInformation(ctx context.Context, orderID uuid.UUID) ([]byte, string, error)
}

type documentService struct {
	repo     Repository
	drivers  drivers.Repository
	vehicles vehicles.Repository
	trailers trailers.Repository
}

// NewDocumentService builds the document renderer.
func NewDocumentService(repo Repository, d drivers.Repository, v vehicles.Repository, t trailers.Repository) (DocumentService, error) {
	if repo == nil || d == nil || v == nil || t == nil {
		return nil, fmt.Errorf("document service dependencies required")
	}
	return &documentService{repo: repo, drivers: d, vehicles: v, trailers: t}, nil
}

// DriverInformation renders the driver information sheet handed to customs
// and border checkpoints. The order must have a driver assigned.
func (s *documentService) DriverInformation(ctx context.Context, orderID uuid.UUID) ([]byte, string, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	if order.AssignedDriverID == nil {
		return nil, "", pkgerrors.New(pkgerrors.CodeStateConflict, "order has no driver assigned")
	}

	driver, err := s.drivers.FindByID(ctx, *order.AssignedDriverID)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load driver")
	}

	var vehicle *models.Vehicle
	if order.AssignedVehicleID != nil {
		vehicle, err = s.vehicles.FindByID(ctx, *order.AssignedVehicleID)
		if err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vehicle")
		}
	}
	var trailer *models.Trailer
	if order.AssignedTrailerID != nil {
		trailer, err = s.trailers.FindByID(ctx, *order.AssignedTrailerID)
		if err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trailer")
		}
	}

	payload, err := renderDriverInformation(order, driver, vehicle, trailer)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render document")
	}
	filename := fmt.Sprintf("driver-information-%d.xlsx", order.OrderNumber)
	return payload, filename, nil
}

const documentSheet = "Driver Information"

func renderDriverInformation(order *models.Order, driver *models.Driver, vehicle *models.Vehicle, trailer *models.Trailer) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(documentSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(documentSheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(documentSheet, "B", "B", 40); err != nil {
		return nil, err
	}

	rows := [][2]any{
		{"Order Number", order.OrderNumber},
		{"Trip Status", order.TripStatus.String()},
		{"Route", fmt.Sprintf("%s, %s -> %s, %s", order.From.City, order.From.Country, order.To.City, order.To.Country)},
		{"", ""},
		{"Driver", driver.FirstName + " " + driver.LastName},
		{"License No", driver.LicenseNo},
		{"Phone", driver.Phone},
		{"Passport Expiry", formatDocumentDate(driver.PassportExpiry)},
		{"Visa Expiry", formatDocumentDate(driver.VisaExpiry)},
		{"Residence Permit Expiry", formatDocumentDate(driver.ResidencePermitExpiry)},
	}
	if vehicle != nil {
		rows = append(rows,
			[2]any{"", ""},
			[2]any{"Vehicle Plate", vehicle.Plate},
			[2]any{"Vehicle", vehicle.Brand + " " + vehicle.Model},
			[2]any{"Capacity (kg)", vehicle.CapacityKg},
			[2]any{"Insurance Expiry", formatDocumentDate(vehicle.InsuranceExpiry)},
			[2]any{"Inspection Expiry", formatDocumentDate(vehicle.InspectionExpiry)},
		)
	}
	if trailer != nil {
		rows = append(rows,
			[2]any{"", ""},
			[2]any{"Trailer Plate", trailer.Plate},
			[2]any{"Trailer Type", trailer.Type},
			[2]any{"Trailer Capacity (kg)", trailer.CapacityKg},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(documentSheet, cell, &[]any{row[0], row[1]}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDocumentDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
