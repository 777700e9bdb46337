package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/db"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

// Service defines the customer management surface.
type Service interface {
	Create(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*CustomerList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RiskStatuses() []enums.RiskStatus
}

type service struct {
	repo Repository
}

// NewService builds a customer service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateCustomerInput) (*CustomerDTO, error) {
	creditLimit := decimal.Zero
	if input.CreditLimit != nil {
		if input.CreditLimit.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "credit limit cannot be negative")
		}
		creditLimit = *input.CreditLimit
	}

	customer := &models.Customer{
		Name:         strings.TrimSpace(input.Name),
		TaxNumber:    strings.TrimSpace(input.TaxNumber),
		ContactName:  strings.TrimSpace(input.ContactName),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		Address:      strings.TrimSpace(input.Address),
		CreditLimit:  creditLimit,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "tax number already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create customer")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return FromModel(customer), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*CustomerList, error) {
	rows, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	list := &CustomerList{Customers: make([]CustomerDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			list.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		list.Customers = append(list.Customers, *FromModel(&rows[i]))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}

	if input.Name != nil {
		customer.Name = strings.TrimSpace(*input.Name)
	}
	if input.ContactName != nil {
		customer.ContactName = strings.TrimSpace(*input.ContactName)
	}
	if input.ContactPhone != nil {
		customer.ContactPhone = strings.TrimSpace(*input.ContactPhone)
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}
	if input.RiskStatus != nil {
		if !input.RiskStatus.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid risk status")
		}
		customer.RiskStatus = input.RiskStatus
		customer.Blacklisted = *input.RiskStatus == enums.RiskStatusBlacklist
	}
	if input.Blacklisted != nil {
		customer.Blacklisted = *input.Blacklisted
	}
	if input.HasLawsuit != nil {
		customer.HasLawsuit = *input.HasLawsuit
	}
	if input.CreditLimit != nil {
		if input.CreditLimit.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "credit limit cannot be negative")
		}
		customer.CreditLimit = *input.CreditLimit
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	return FromModel(customer), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}

func (s *service) RiskStatuses() []enums.RiskStatus {
	return enums.RiskStatuses()
}
