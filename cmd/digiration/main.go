package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/digiration/digiration/internal/pkg/config"
	"github.com/digiration/digiration/internal/pkg/database"
	"github.com/digiration/digiration/internal/pkg/health"
	"github.com/digiration/digiration/internal/pkg/logger"
	"github.com/digiration/digiration/internal/pkg/middleware"
	nsqpkg "github.com/digiration/digiration/internal/pkg/nsq"
	"github.com/digiration/digiration/internal/pkg/server"
	"github.com/digiration/digiration/internal/utils"
	authGateway "github.com/digiration/digiration/services/auth/gateway"
	authHandler "github.com/digiration/digiration/services/auth/handler"
	authHTTP "github.com/digiration/digiration/services/auth/handler/http"
	authRepository "github.com/digiration/digiration/services/auth/repository"
	authUsecase "github.com/digiration/digiration/services/auth/usecase"
	rationGateway "github.com/digiration/digiration/services/rations/gateway"
	rationHandler "github.com/digiration/digiration/services/rations/handler"
	rationHTTP "github.com/digiration/digiration/services/rations/handler/http"
	rationRepository "github.com/digiration/digiration/services/rations/repository"
	rationUsecase "github.com/digiration/digiration/services/rations/usecase"
)

const (
	appName = "digiration-api"

	sessionSweepInterval = 15 * time.Minute
	quotaResetInterval   = time.Hour
)

func main() {
	configs := config.InitConfig("config/digiration.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger, configs.App.Debug)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	if configs.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	// SQLite is the system of record
	sqliteClient, err := database.NewSQLiteClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to open SQLite database", logger.Err(err))
	}

	// Redis only backs the IP rate limiter, which fails open; startup
	// proceeds without it.
	healthDeps := map[string]health.Pinger{"sqlite": sqliteClient}
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Warn("Redis unavailable, IP rate limiting disabled", logger.Err(err))
		redisClient = nil
	} else {
		healthDeps["redis"] = redisClient
	}

	// NSQ carries purchase events; publishing is best-effort and a nil
	// producer is a no-op.
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Warn("NSQ unavailable, purchase events disabled", logger.Err(err))
			producer = nil
		}
	}

	// Auth service
	authRepo := authRepository.NewAuthRepo(configs, sqliteClient.GetDB())
	smsGW := authGateway.NewSMSGateway(configs)
	aadhaarGW := authGateway.NewAadhaarVerifier(configs)
	authUC := authUsecase.NewAuthUC(authRepo, smsGW, aadhaarGW, configs)

	// Rations service
	rationRepo := rationRepository.NewRationRepo(configs, sqliteClient.GetDB())
	paymentGW := rationGateway.NewPaymentGateway(configs)
	publisher := rationGateway.NewPurchasePublisher(producer)
	rationUC := rationUsecase.NewRationUC(rationRepo, paymentGW, publisher, configs)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthDeps)

	var authExtra []echo.MiddlewareFunc
	if redisClient != nil {
		authExtra = append(authExtra, middleware.IPRateLimiter(30, time.Minute, redisClient.GetClient()))
	}

	authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), configs).RegisterRoutes(e, authExtra...)
	rationHandler.NewHandler(rationHTTP.NewRationHandler(rationUC), configs).RegisterRoutes(e)

	// Background janitors: dead-session sweep and the monthly quota
	// reset. The reset runs hourly and is idempotent, so catching the
	// month boundary late is harmless.
	janitorCtx, stopJanitors := context.WithCancel(context.Background())
	go runJanitor(janitorCtx, sessionSweepInterval, "session sweep", func(ctx context.Context) error {
		_, err := authUC.CleanupExpiredSessions(ctx)
		return err
	})
	go runJanitor(janitorCtx, quotaResetInterval, "quota reset", func(ctx context.Context) error {
		_, err := rationUC.ResetMonthlyQuotas(ctx)
		return err
	})

	// Closers run in registration order once the server has drained:
	// janitors first so nothing touches the stores mid-close, SQLite last.
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error {
		stopJanitors()
		return nil
	})
	if producer != nil {
		shutdown.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if redisClient != nil {
		shutdown.Register(func(context.Context) error {
			return redisClient.Close()
		})
	}
	shutdown.Register(func(context.Context) error {
		return sqliteClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}

// runJanitor runs fn on every tick until the context is cancelled
func runJanitor(ctx context.Context, interval time.Duration, name string, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil {
				logger.Error("Background job failed",
					logger.String("job", name),
					logger.ErrorField(err))
			}
		}
	}
}
