package suppliers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db/models"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

type stubSupplierRepo struct {
	supplier *models.Supplier
	rows     []models.Supplier
	err      error
	created  *models.Supplier
	deleted  uuid.UUID
}

func (s *stubSupplierRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubSupplierRepo) Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if s.err != nil {
		return nil, s.err
	}
	supplier.ID = uuid.New()
	supplier.CreatedAt = time.Now()
	s.created = supplier
	return supplier, nil
}

func (s *stubSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.supplier, nil
}

func (s *stubSupplierRepo) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.Supplier, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func (s *stubSupplierRepo) Update(ctx context.Context, supplier *models.Supplier) error { return nil }

func (s *stubSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = id
	return nil
}

func TestCreateNormalizesContact(t *testing.T) {
	repo := &stubSupplierRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateSupplierInput{
		Name:         "  Anadolu Nakliyat  ",
		TaxNumber:    " 1234567890 ",
		ContactEmail: " Depo@Anadolu.Example ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Name != "Anadolu Nakliyat" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.TaxNumber != "1234567890" {
		t.Fatalf("expected trimmed tax number, got %q", dto.TaxNumber)
	}
	if dto.ContactEmail != "depo@anadolu.example" {
		t.Fatalf("expected lowercased email, got %q", dto.ContactEmail)
	}
	if !repo.created.IsActive {
		t.Fatal("new suppliers should be active")
	}
}

func TestCreateDuplicateTaxNumber(t *testing.T) {
	svc, _ := NewService(&stubSupplierRepo{err: errDuplicateTax{}})

	_, err := svc.Create(context.Background(), CreateSupplierInput{
		Name:      "Anadolu Nakliyat",
		TaxNumber: "1234567890",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

type errDuplicateTax struct{}

func (errDuplicateTax) Error() string { return "duplicate key value violates unique constraint" }

func TestUpdatePreservesTaxNumber(t *testing.T) {
	repo := &stubSupplierRepo{supplier: &models.Supplier{
		ID:        uuid.New(),
		Name:      "Anadolu Nakliyat",
		TaxNumber: "1234567890",
		IsActive:  true,
	}}
	svc, _ := NewService(repo)

	name := "Anadolu Lojistik"
	dto, err := svc.Update(context.Background(), repo.supplier.ID, UpdateSupplierInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Name != "Anadolu Lojistik" {
		t.Fatalf("expected updated name, got %q", dto.Name)
	}
	if dto.TaxNumber != "1234567890" {
		t.Fatalf("tax number must not change on update, got %q", dto.TaxNumber)
	}
}

func TestDeleteChecksExistenceFirst(t *testing.T) {
	repo := &stubSupplierRepo{err: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo)

	err := svc.Delete(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.deleted != uuid.Nil {
		t.Fatal("delete should not reach the repository for a missing supplier")
	}
}

func TestListPaginatesWithCursor(t *testing.T) {
	rows := make([]models.Supplier, 3)
	for i := range rows {
		rows[i] = models.Supplier{
			ID:        uuid.New(),
			Name:      "Supplier",
			TaxNumber: "123456789" + string(rune('0'+i)),
			CreatedAt: time.Date(2024, 3, 1, 0, 0, i, 0, time.UTC),
		}
	}
	svc, _ := NewService(&stubSupplierRepo{rows: rows})

	list, err := svc.List(context.Background(), pagination.Params{Limit: 2}, Filters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(list.Suppliers))
	}
	if list.NextCursor == "" {
		t.Fatal("expected next cursor when more rows remain")
	}
}
