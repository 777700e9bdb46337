package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rotalog/rotalog-backend/api/routes"
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
	"github.com/rotalog/rotalog-backend/pkg/logger"
	"github.com/rotalog/rotalog-backend/pkg/migrate"
	"github.com/rotalog/rotalog-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()

	usersRepo := users.NewRepository(gormDB)
	customersRepo := customers.NewRepository(gormDB)
	driversRepo := drivers.NewRepository(gormDB)
	vehiclesRepo := vehicles.NewRepository(gormDB)
	trailersRepo := trailers.NewRepository(gormDB)
	suppliersRepo := suppliers.NewRepository(gormDB)
	ordersRepo := orders.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       usersRepo,
		SessionManager: sessionManager,
		LoginLimiter:   redisClient,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(usersRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	customersService, err := customers.NewService(customersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	driversService, err := drivers.NewService(driversRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create drivers service", err)
		os.Exit(1)
	}

	vehiclesService, err := vehicles.NewService(vehiclesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create vehicles service", err)
		os.Exit(1)
	}

	trailersService, err := trailers.NewService(trailersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create trailers service", err)
		os.Exit(1)
	}

	suppliersService, err := suppliers.NewService(suppliersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create suppliers service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:      ordersRepo,
		Tx:        dbClient,
		Customers: orders.NewCustomerGate(customersRepo),
		Fleet:     orders.NewFleetResources(vehiclesRepo, trailersRepo, driversRepo),
		Users:     orders.NewUserDirectory(usersRepo),
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	documentService, err := orders.NewDocumentService(ordersRepo, driversRepo, vehiclesRepo, trailersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create document service", err)
		os.Exit(1)
	}

	statisticsService, err := statistics.NewService(statistics.NewRepository(gormDB))
	if err != nil {
		logg.Error(context.Background(), "failed to create statistics service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, routes.Services{
			Auth:       authService,
			Users:      usersService,
			Customers:  customersService,
			Orders:     ordersService,
			OrdersRepo: ordersRepo,
			Documents:  documentService,
			Drivers:    driversService,
			Vehicles:   vehiclesService,
			Trailers:   trailersService,
			Suppliers:  suppliersService,
			Statistics: statisticsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
