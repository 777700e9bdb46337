package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rotalog/rotalog-backend/pkg/config"
	"github.com/rotalog/rotalog-backend/pkg/db/models"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	pkgerrors "github.com/rotalog/rotalog-backend/pkg/errors"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

type stubUserRepo struct {
	user       *models.User
	users      []models.User
	err        error
	created    *models.User
	updated    *models.User
	deletedID  uuid.UUID
	hasUser    bool
	hasEmail   bool
	updateErr  error
	existsErr  error
	lastFilter Filters
}

func (s *stubUserRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	s.created = user
	return user, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserRepo) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFilter = filters
	return s.users, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = user
	return nil
}

func (s *stubUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func (s *stubUserRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return s.hasUser, s.existsErr
}

func (s *stubUserRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return s.hasEmail, s.existsErr
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deletedID = id
	return nil
}

func passwordCfg() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil, passwordCfg()); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestCreateHashesPasswordAndNormalizes(t *testing.T) {
	repo := &stubUserRepo{}
	svc, err := NewService(repo, passwordCfg())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateUserInput{
		Username: " mehmet ",
		Email:    "Mehmet@Rotalog.COM",
		Password: "sup3r-s3cret",
		FullName: "Mehmet Demir",
		Role:     enums.RoleSales,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Email != "mehmet@rotalog.com" {
		t.Fatalf("expected lowercased email, got %s", dto.Email)
	}
	if repo.created.PasswordHash == "" || repo.created.PasswordHash == "sup3r-s3cret" {
		t.Fatal("expected password to be hashed")
	}
	if !repo.created.IsActive {
		t.Fatal("expected new users to be active")
	}
}

func TestCreateNormalizesLegacyRole(t *testing.T) {
	repo := &stubUserRepo{}
	svc, _ := NewService(repo, passwordCfg())

	dto, err := svc.Create(context.Background(), CreateUserInput{
		Username: "ayse",
		Email:    "ayse@rotalog.com",
		Password: "sup3r-s3cret",
		FullName: "Ayse Kaya",
		Role:     enums.Role("operation"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Role != enums.RoleOperator {
		t.Fatalf("expected legacy operation role to map to operator, got %s", dto.Role)
	}
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{}, passwordCfg())

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "x",
		Email:    "x@rotalog.com",
		Password: "sup3r-s3cret",
		FullName: "X",
		Role:     enums.Role("courier"),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{err: gorm.ErrRecordNotFound}, passwordCfg())

	_, err := svc.GetByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListPaginatesWithCursor(t *testing.T) {
	rows := make([]models.User, 3)
	for i := range rows {
		rows[i] = models.User{
			ID:        uuid.New(),
			Username:  "user",
			Role:      enums.RoleOperator,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		}
	}
	repo := &stubUserRepo{users: rows}
	svc, _ := NewService(repo, passwordCfg())

	list, err := svc.List(context.Background(), pagination.Params{Limit: 2}, Filters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list.Users))
	}
	if list.NextCursor == "" {
		t.Fatal("expected next cursor when more rows exist")
	}

	cursor, err := pagination.ParseCursor(list.NextCursor)
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if cursor.ID != rows[1].ID {
		t.Fatal("cursor should point at the last returned row")
	}
}

func TestUpdateMapsUniqueViolation(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: enums.RoleSales}
	repo := &stubUserRepo{user: user, updateErr: errors.New("duplicate key value violates unique constraint")}
	svc, _ := NewService(repo, passwordCfg())

	email := "taken@rotalog.com"
	_, err := svc.Update(context.Background(), user.ID, UpdateUserInput{Email: &email})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUsernameAvailable(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{hasUser: true}, passwordCfg())

	available, err := svc.UsernameAvailable(context.Background(), "taken")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if available {
		t.Fatal("expected taken username to be unavailable")
	}
}
