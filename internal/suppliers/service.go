package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

// Service defines the supplier management surface.
type Service interface {
	Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SupplierDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*SupplierList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds a supplier service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("suppliers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error) {
	supplier := &models.Supplier{
		Name:         strings.TrimSpace(input.Name),
		TaxNumber:    strings.TrimSpace(input.TaxNumber),
		ContactName:  strings.TrimSpace(input.ContactName),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		ContactEmail: strings.ToLower(strings.TrimSpace(input.ContactEmail)),
		Address:      strings.TrimSpace(input.Address),
		IsActive:     true,
	}

	created, err := s.repo.Create(ctx, supplier)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "tax number already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create supplier")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}
	return FromModel(supplier), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*SupplierList, error) {
	rows, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list suppliers")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	list := &SupplierList{Suppliers: make([]SupplierDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			list.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		list.Suppliers = append(list.Suppliers, *FromModel(&rows[i]))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}

	if input.Name != nil {
		supplier.Name = strings.TrimSpace(*input.Name)
	}
	if input.ContactName != nil {
		supplier.ContactName = strings.TrimSpace(*input.ContactName)
	}
	if input.ContactPhone != nil {
		supplier.ContactPhone = strings.TrimSpace(*input.ContactPhone)
	}
	if input.ContactEmail != nil {
		supplier.ContactEmail = strings.ToLower(strings.TrimSpace(*input.ContactEmail))
	}
	if input.Address != nil {
		supplier.Address = strings.TrimSpace(*input.Address)
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update supplier")
	}
	return FromModel(supplier), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete supplier")
	}
	return nil
}
