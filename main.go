package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/santikahms/hotel-service/config"
	"github.com/santikahms/hotel-service/internal/cache"
	"github.com/santikahms/hotel-service/internal/handler"
	"github.com/santikahms/hotel-service/internal/middleware"
	"github.com/santikahms/hotel-service/internal/repository"
	"github.com/santikahms/hotel-service/internal/service"
	"github.com/santikahms/hotel-service/pkg/database"
	"github.com/santikahms/hotel-service/pkg/logger"
	"github.com/santikahms/hotel-service/pkg/rabbitmq"
	"github.com/santikahms/hotel-service/pkg/token"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

// loggingPublisher reports publish failures without surfacing them to callers.
type loggingPublisher struct {
	inner *rabbitmq.Publisher
	log   *zap.Logger
}

func (p *loggingPublisher) Publish(routingKey string, payload any) error {
	if err := p.inner.Publish(routingKey, payload); err != nil {
		p.log.Error("publish event", zap.String("routing_key", routingKey), zap.Error(err))
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}

	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatal("connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = &loggingPublisher{inner: p, log: log}
		log.Info("event publishing enabled")
	}

	var metricsCache service.MetricsCache
	if cfg.RedisAddr != "" {
		c, err := cache.New(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatal("connect redis", zap.Error(err))
		}
		defer c.Close()
		metricsCache = c
		log.Info("metrics cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	userRepo := repository.NewUserRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	runTx := database.NewTxRunner(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)

	authSvc := service.NewAuthService(userRepo, tokens)
	roomSvc := service.NewRoomService(roomRepo, roomTypeRepo)
	guestSvc := service.NewGuestService(guestRepo, reservationRepo)
	reservationSvc := service.NewReservationService(reservationRepo, roomRepo, guestRepo, paymentRepo, runTx, publisher)
	paymentSvc := service.NewPaymentService(paymentRepo, reservationRepo, runTx, publisher)
	expenseSvc := service.NewExpenseService(expenseRepo)
	dashboardSvc := service.NewDashboardService(roomRepo, reservationRepo, paymentRepo, expenseRepo, metricsCache)
	reportSvc := service.NewReportService(reservationRepo, paymentRepo)

	if err := authSvc.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("seed admin user", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewRequestValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	public := e.Group("/api/v1")
	handler.NewAuthHandler(authSvc).RegisterPublicRoutes(public)

	api := e.Group("/api/v1", middleware.JWT(tokens))
	handler.NewAuthHandler(authSvc).RegisterRoutes(api)
	handler.NewRoomHandler(roomSvc).RegisterRoutes(api)
	handler.NewGuestHandler(guestSvc).RegisterRoutes(api)
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(api)
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(api)
	handler.NewExpenseHandler(expenseSvc).RegisterRoutes(api)
	handler.NewDashboardHandler(dashboardSvc).RegisterRoutes(api)
	handler.NewReportHandler(reportSvc).RegisterRoutes(api)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
