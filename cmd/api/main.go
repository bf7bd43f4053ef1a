package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/config"
	"github.com/prasetyadi/nebeng/internal/pkg/database"
	"github.com/prasetyadi/nebeng/internal/pkg/health"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	natspkg "github.com/prasetyadi/nebeng/internal/pkg/nats"
	"github.com/prasetyadi/nebeng/internal/pkg/server"

	authHandler "github.com/prasetyadi/nebeng/services/auth/handler"
	authHTTP "github.com/prasetyadi/nebeng/services/auth/handler/http"
	authRepository "github.com/prasetyadi/nebeng/services/auth/repository"
	authUsecase "github.com/prasetyadi/nebeng/services/auth/usecase"

	rideHandler "github.com/prasetyadi/nebeng/services/rides/handler"
	rideHTTP "github.com/prasetyadi/nebeng/services/rides/handler/http"
	rideGateway "github.com/prasetyadi/nebeng/services/rides/gateway"
	rideRepository "github.com/prasetyadi/nebeng/services/rides/repository"
	rideUsecase "github.com/prasetyadi/nebeng/services/rides/usecase"

	requestHandler "github.com/prasetyadi/nebeng/services/requests/handler"
	requestHTTP "github.com/prasetyadi/nebeng/services/requests/handler/http"
	requestGateway "github.com/prasetyadi/nebeng/services/requests/gateway"
	requestRepository "github.com/prasetyadi/nebeng/services/requests/repository"
	requestUsecase "github.com/prasetyadi/nebeng/services/requests/usecase"
)

const appName = "nebeng-api"

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		postgresClient.Close()
		return nil
	})

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		return redisClient.Close()
	})

	// NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	// Repositories
	userRepo := authRepository.NewUserRepo(postgresClient.GetDB())
	rideRepo := rideRepository.NewRideRepo(configs, postgresClient.GetDB(), redisClient)
	requestRepo := requestRepository.NewRequestRepo(postgresClient.GetDB())

	// Gateways
	rideGW := rideGateway.NewRideGW(natsClient)
	requestGW := requestGateway.NewRequestGW(natsClient)

	// Usecases
	authUC := authUsecase.NewAuthUC(configs, userRepo)
	rideUC := rideUsecase.NewRideUC(configs, rideRepo, rideGW)
	requestUC := requestUsecase.NewRequestUC(requestRepo, rideRepo, postgresClient, requestGW)

	// HTTP handlers
	authH := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), configs)
	rideH := rideHandler.NewHandler(rideHTTP.NewRideHandler(rideUC), configs)
	requestH := requestHandler.NewHandler(requestHTTP.NewRequestHandler(requestUC), configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, postgresClient)
	authH.RegisterRoutes(e)
	rideH.RegisterRoutes(e)
	requestH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownManager.Shutdown(ctx)
}
