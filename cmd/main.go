package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	assistantapp "github.com/muhammadheryan/railway-reservation/application/assistant"
	bookingapp "github.com/muhammadheryan/railway-reservation/application/booking"
	reportapp "github.com/muhammadheryan/railway-reservation/application/report"
	trainapp "github.com/muhammadheryan/railway-reservation/application/train"
	userapp "github.com/muhammadheryan/railway-reservation/application/user"
	"github.com/muhammadheryan/railway-reservation/cmd/config"
	redisclient "github.com/muhammadheryan/railway-reservation/cmd/redis"
	_ "github.com/muhammadheryan/railway-reservation/docs"
	bookingRepo "github.com/muhammadheryan/railway-reservation/repository/booking"
	paymentRepo "github.com/muhammadheryan/railway-reservation/repository/payment"
	redisRepo "github.com/muhammadheryan/railway-reservation/repository/redis"
	reportRepo "github.com/muhammadheryan/railway-reservation/repository/report"
	seatRepo "github.com/muhammadheryan/railway-reservation/repository/seat"
	trainRepo "github.com/muhammadheryan/railway-reservation/repository/train"
	txRepo "github.com/muhammadheryan/railway-reservation/repository/tx"
	userRepo "github.com/muhammadheryan/railway-reservation/repository/user"
	"github.com/muhammadheryan/railway-reservation/thirdparty/rabbitmq"
	"github.com/muhammadheryan/railway-reservation/transport"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	validatorx "github.com/muhammadheryan/railway-reservation/utils/validator"
	"go.uber.org/zap"
)

// @title RAILWAY RESERVATION API
// @version 1.0
// @description Train search, seat booking, payment and cancellation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init("railway-api", cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Bookings still work without the broker; unpaid holds then stay until cancelled.
	var publisher bookingapp.HoldPublisher
	if p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password); err != nil {
		logger.Warn("rabbitmq unavailable, booking holds will not expire", zap.Error(err))
	} else {
		publisher = p
		defer p.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	TrainRepo := trainRepo.NewTrainRepository(db)
	SeatRepo := seatRepo.NewSeatRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	PaymentRepo := paymentRepo.NewPaymentRepository(db)
	ReportRepo := reportRepo.NewReportRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	handler := &transport.RestHandler{
		UserApp:      userapp.NewUserApp(cfg, UserRepo, RedisRepo),
		TrainApp:     trainapp.NewTrainApp(cfg, TrainRepo, SeatRepo, RedisRepo),
		BookingApp:   bookingapp.NewBookingApp(cfg, TxRepo, TrainRepo, SeatRepo, BookingRepo, PaymentRepo, publisher),
		ReportApp:    reportapp.NewReportApp(ReportRepo, TrainRepo, BookingRepo, UserRepo),
		AssistantApp: assistantapp.NewAssistantApp(),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewTransport(cfg, handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}
