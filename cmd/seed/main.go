package main

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/cmd/config"
	seatRepo "github.com/muhammadheryan/railway-reservation/repository/seat"
	trainRepo "github.com/muhammadheryan/railway-reservation/repository/train"
	txRepo "github.com/muhammadheryan/railway-reservation/repository/tx"
	userRepo "github.com/muhammadheryan/railway-reservation/repository/user"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Creates the admin and demo accounts and the sample timetable.
func main() {
	cfg := config.Load()

	if err := logger.Init("seed", cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	s := &seeder{
		txRepo:    txRepo.NewTxRepository(db),
		userRepo:  userRepo.NewUserRepository(db),
		trainRepo: trainRepo.NewTrainRepository(db),
		seatRepo:  seatRepo.NewSeatRepository(db),
		hashCost:  bcrypt.DefaultCost,
		today:     time.Now().UTC().Truncate(24 * time.Hour),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.run(ctx); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("database seeded")
}
