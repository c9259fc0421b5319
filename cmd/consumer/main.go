package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/railway-reservation/cmd/config"
	"github.com/muhammadheryan/railway-reservation/thirdparty/rabbitmq"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

// Consumes booking hold messages and asks the API to release unpaid bookings.
func main() {
	cfg := config.Load()

	if err := logger.Init("booking-hold-consumer", cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("booking hold consumer running", zap.String("queue", rabbitmq.HoldQueue), zap.String("api", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("booking hold consumer stopped")
}
