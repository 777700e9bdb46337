package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rotalog/rotalog-backend/internal/users"
	pkgAuth "github.com/rotalog/rotalog-backend/pkg/auth"
	"github.com/rotalog/rotalog-backend/pkg/auth/session"
	"github.com/rotalog/rotalog-backend/pkg/config"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/logger"
	"github.com/rotalog/rotalog-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(context.Context, string) (bool, error) {
	return true, nil
}

type stubUsersService struct{}

func (stubUsersService) Create(context.Context, users.CreateUserInput) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func (stubUsersService) GetByID(context.Context, uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func (stubUsersService) List(context.Context, pagination.Params, users.Filters) (*users.UserList, error) {
	return &users.UserList{}, nil
}

func (stubUsersService) Update(context.Context, uuid.UUID, users.UpdateUserInput) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func (stubUsersService) Deactivate(context.Context, uuid.UUID) error {
	return nil
}

func (stubUsersService) Delete(context.Context, uuid.UUID) error {
	return nil
}

func (stubUsersService) UsernameAvailable(context.Context, string) (bool, error) {
	return true, nil
}

func (stubUsersService) EmailAvailable(context.Context, string) (bool, error) {
	return true, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		nil,
		stubSessionChecker{},
		Services{Users: stubUsersService{}},
	)
}

func buildToken(t *testing.T, cfg *config.Config, role enums.Role) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProtectedGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/v1/country-codes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestProtectedGroupAcceptsValidJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/v1/country-codes", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleOperator))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestUserRoutesRequireAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	nonAdmin := httptest.NewRequest(http.MethodGet, "/v1/users/", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleSales))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/v1/users/", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestOrderCreateRequiresSalesRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleCustoms))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customs role got %d", resp.Code)
	}
}

func TestFleetRoutesRejectSalesMutations(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleSales))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for sales role got %d", resp.Code)
	}
}
