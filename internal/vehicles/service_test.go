package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/internal/expiry"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

type stubVehicleRepo struct {
	vehicle *models.Vehicle
	rows    []models.Vehicle
	err     error
	created *models.Vehicle
}

func (s *stubVehicleRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if s.err != nil {
		return nil, s.err
	}
	vehicle.ID = uuid.New()
	vehicle.CreatedAt = time.Now()
	s.created = vehicle
	return vehicle, nil
}

func (s *stubVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vehicle, nil
}

func (s *stubVehicleRepo) FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vehicle, nil
}

func (s *stubVehicleRepo) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Vehicle, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubVehicleRepo) ListWithExpiredDocuments(ctx context.Context, now time.Time) ([]models.Vehicle, error) {
	return s.rows, nil
}

func (s *stubVehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error { return nil }
func (s *stubVehicleRepo) Deactivate(ctx context.Context, id uuid.UUID) error        { return nil }
func (s *stubVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func TestCreateNormalizesPlate(t *testing.T) {
	repo := &stubVehicleRepo{}
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), CreateVehicleInput{Plate: " 34 abc 123 "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Plate != "34 ABC 123" {
		t.Fatalf("expected normalized plate, got %q", dto.Plate)
	}
}

func TestInsuranceClassification(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expired := now.AddDate(0, -1, 0)
	vehicle := &models.Vehicle{
		ID:              uuid.New(),
		Plate:           "34 ABC 123",
		IsActive:        true,
		InsuranceExpiry: &expired,
	}
	svc, _ := NewService(&stubVehicleRepo{vehicle: vehicle})
	svc.(*service).now = func() time.Time { return now }

	dto, err := svc.GetByID(context.Background(), vehicle.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Insurance.Status != expiry.StatusExpired {
		t.Fatalf("expected expired insurance, got %s", dto.Insurance.Status)
	}
	if dto.Inspection.Status != expiry.StatusUnknown {
		t.Fatalf("expected unknown inspection, got %s", dto.Inspection.Status)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(&stubVehicleRepo{err: gorm.ErrRecordNotFound})

	_, err := svc.GetByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
