package trailers

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

// Service defines the trailer management surface.
type Service interface {
	Create(ctx context.Context, input CreateTrailerInput) (*TrailerDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TrailerDTO, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*TrailerList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTrailerInput) (*TrailerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService builds a trailer service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("trailers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateTrailerInput) (*TrailerDTO, error) {
	trailer := &models.Trailer{
		Plate:      strings.ToUpper(strings.Join(strings.Fields(input.Plate), " ")),
		Type:       strings.TrimSpace(input.Type),
		CapacityKg: input.CapacityKg,
		IsActive:   true,
	}

	created, err := s.repo.Create(ctx, trailer)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "plate already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create trailer")
	}
	return FromModel(created), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*TrailerDTO, error) {
	trailer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "trailer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trailer")
	}
	return FromModel(trailer), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*TrailerList, error) {
	rows, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list trailers")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	list := &TrailerList{Trailers: make([]TrailerDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			list.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		list.Trailers = append(list.Trailers, *FromModel(&rows[i]))
	}
	return list, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateTrailerInput) (*TrailerDTO, error) {
	trailer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "trailer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load trailer")
	}

	if input.Type != nil {
		trailer.Type = strings.TrimSpace(*input.Type)
	}
	if input.CapacityKg != nil {
		trailer.CapacityKg = *input.CapacityKg
	}
	if input.IsActive != nil {
		trailer.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, trailer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update trailer")
	}
	return FromModel(trailer), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete trailer")
	}
	return nil
}
