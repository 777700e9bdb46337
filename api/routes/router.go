package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rotalog/rotalog-backend/api/controllers"
	"github.com/rotalog/rotalog-backend/api/middleware"
	"github.com/rotalog/rotalog-backend/internal/auth"
	"github.com/rotalog/rotalog-backend/internal/customers"
	"github.com/rotalog/rotalog-backend/internal/drivers"
	"github.com/rotalog/rotalog-backend/internal/orders"
	"github.com/rotalog/rotalog-backend/internal/statistics"
	"github.com/rotalog/rotalog-backend/internal/suppliers"
	"github.com/rotalog/rotalog-backend/internal/trailers"
	"github.com/rotalog/rotalog-backend/internal/users"
	"github.com/rotalog/rotalog-backend/internal/vehicles"
	"github.com/rotalog/rotalog-backend/pkg/auth/session"
	"github.com/rotalog/rotalog-backend/pkg/config"
	"github.com/rotalog/rotalog-backend/pkg/db"
	"github.com/rotalog/rotalog-backend/pkg/enums"
	"github.com/rotalog/rotalog-backend/pkg/logger"
	pkgredis "github.com/rotalog/rotalog-backend/pkg/redis"
)

// Services bundles everything the HTTP surface depends on.
type Services struct {
	Auth       auth.Service
	Users      users.Service
	Customers  customers.Service
	Orders     orders.Service
	OrdersRepo orders.Repository
	Documents  orders.DocumentService
	Drivers    drivers.Service
	Vehicles   vehicles.Service
	Trailers   trailers.Service
	Suppliers  suppliers.Service
	Statistics statistics.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	sessionChecker session.AccessSessionChecker,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	// The typed nil check keeps a missing redis client out of the idempotency path.
	var idemStore pkgredis.IdempotencyStore
	if redisClient != nil {
		idemStore = redisClient
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
			r.Get("/profile", controllers.AuthProfile(svcs.Auth, logg))
			r.Post("/change-password", controllers.AuthChangePassword(svcs.Auth, logg))
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Get("/country-codes", controllers.CountryCodeList())
		r.Get("/risk-statuses", controllers.RiskStatusList(svcs.Customers, logg))

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomerList(svcs.Customers, logg))
			r.Get("/{customerId}", controllers.CustomerDetail(svcs.Customers, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleSales))
				r.Post("/", controllers.CustomerCreate(svcs.Customers, logg))
				r.Put("/{customerId}", controllers.CustomerUpdate(svcs.Customers, logg))
				r.Delete("/{customerId}", controllers.CustomerDelete(svcs.Customers, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(svcs.Orders, logg))
			r.Get("/search", controllers.OrderList(svcs.Orders, logg))
			r.Get("/status/{status}", controllers.OrderListByStatus(svcs.Orders, logg))
			r.Get("/sales-person/{userId}", controllers.OrderListBySalesPerson(svcs.Orders, logg))
			r.Get("/number/{orderNumber}", controllers.OrderDetailByNumber(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.OrderDetail(svcs.Orders, logg))
			r.Get("/{orderId}/assignment-history", controllers.OrderAssignmentHistory(svcs.OrdersRepo, logg))
			r.Get("/{orderId}/driver-information-document", controllers.OrderDriverDocument(svcs.Documents, logg))

			r.With(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleSales)).Post("/", controllers.OrderCreate(svcs.Orders, logg))
			r.Put("/{orderId}", controllers.OrderUpdate(svcs.Orders, logg))
			r.Delete("/{orderId}", controllers.OrderDelete(svcs.Orders, logg))
			r.Post("/{orderId}/approve", controllers.OrderApprove(svcs.Orders, logg))
			r.Post("/{orderId}/cancel", controllers.OrderCancel(svcs.Orders, logg))
			r.Post("/{orderId}/transition", controllers.OrderTransition(svcs.Orders, logg))
			r.Post("/{orderId}/assign-self", controllers.OrderAssignSelf(svcs.Orders, logg))
			r.With(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleOperator, enums.RoleFleet)).Post("/{orderId}/assign-resources", controllers.OrderAssignResources(svcs.Orders, logg))
		})

		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", controllers.DriverList(svcs.Drivers, logg))
			r.Get("/search", controllers.DriverSearch(svcs.Drivers, logg))
			r.Get("/{driverId}", controllers.DriverDetail(svcs.Drivers, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleFleet))
				r.Post("/", controllers.DriverCreate(svcs.Drivers, logg))
				r.Put("/{driverId}", controllers.DriverUpdate(svcs.Drivers, logg))
				r.Delete("/{driverId}", controllers.DriverDelete(svcs.Drivers, logg))
			})
		})

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", controllers.VehicleList(svcs.Vehicles, logg))
			r.Get("/search", controllers.VehicleSearch(svcs.Vehicles, logg))
			r.Get("/{vehicleId}", controllers.VehicleDetail(svcs.Vehicles, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleFleet))
				r.Post("/", controllers.VehicleCreate(svcs.Vehicles, logg))
				r.Put("/{vehicleId}", controllers.VehicleUpdate(svcs.Vehicles, logg))
				r.Delete("/{vehicleId}", controllers.VehicleDelete(svcs.Vehicles, logg))
			})
		})

		r.Route("/trailers", func(r chi.Router) {
			r.Get("/", controllers.TrailerList(svcs.Trailers, logg))
			r.Get("/{trailerId}", controllers.TrailerDetail(svcs.Trailers, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleFleet))
				r.Post("/", controllers.TrailerCreate(svcs.Trailers, logg))
				r.Put("/{trailerId}", controllers.TrailerUpdate(svcs.Trailers, logg))
				r.Delete("/{trailerId}", controllers.TrailerDelete(svcs.Trailers, logg))
			})
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.SupplierList(svcs.Suppliers, logg))
			r.Get("/{supplierId}", controllers.SupplierDetail(svcs.Suppliers, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(logg, enums.RoleAdmin, enums.RoleOperator))
				r.Post("/", controllers.SupplierCreate(svcs.Suppliers, logg))
				r.Put("/{supplierId}", controllers.SupplierUpdate(svcs.Suppliers, logg))
				r.Delete("/{supplierId}", controllers.SupplierDelete(svcs.Suppliers, logg))
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireRole(logg, enums.RoleAdmin))
			r.Get("/", controllers.UserList(svcs.Users, logg))
			r.Get("/paginated", controllers.UserList(svcs.Users, logg))
			r.Get("/search", controllers.UserList(svcs.Users, logg))
			r.Get("/active", controllers.UserListActive(svcs.Users, logg))
			r.Get("/check-username", controllers.UserCheckUsername(svcs.Users, logg))
			r.Get("/check-email", controllers.UserCheckEmail(svcs.Users, logg))
			r.Get("/department/{department}", controllers.UserListByDepartment(svcs.Users, logg))
			r.Get("/role/{role}", controllers.UserListByRole(svcs.Users, logg))
			r.Get("/{userId}", controllers.UserDetail(svcs.Users, logg))
			r.Post("/", controllers.UserCreate(svcs.Users, logg))
			r.Put("/{userId}", controllers.UserUpdate(svcs.Users, logg))
			r.Post("/{userId}/deactivate", controllers.UserDeactivate(svcs.Users, logg))
			r.Delete("/{userId}", controllers.UserDelete(svcs.Users, logg))
		})

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/dashboard", controllers.StatisticsDashboard(svcs.Statistics, logg))
		})
	})

	return r
}
