package main

import (
	"context"
	"time"

	"github.com/muhammadheryan/railway-reservation/model"
	seatrepo "github.com/muhammadheryan/railway-reservation/repository/seat"
	trainrepo "github.com/muhammadheryan/railway-reservation/repository/train"
	txrepo "github.com/muhammadheryan/railway-reservation/repository/tx"
	userrepo "github.com/muhammadheryan/railway-reservation/repository/user"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// seatDays is how many days ahead availability rows are created for new trains.
const seatDays = 30

type seedUser struct {
	username string
	email    string
	phone    string
	fullName string
	password string
	isAdmin  bool
}

var users = []seedUser{
	{username: "admin", email: "admin@example.com", phone: "9000000000", fullName: "Administrator", password: "admin123", isAdmin: true},
	{username: "user1", email: "user1@example.com", phone: "9000000001", fullName: "John Passenger", password: "user123"},
	{username: "user2", email: "user2@example.com", phone: "9000000002", fullName: "Jane Traveler", password: "user456"},
}

func sched(dep, arr, dur string) model.Schedule {
	return model.Schedule{"departure": dep, "arrival": arr, "duration": dur}
}

var trains = []model.TrainEntity{
	{TrainNo: "IR-001", Name: "Express Alpha", Source: "Delhi", Destination: "Mumbai", Route: "Delhi -> Agra -> Indore -> Mumbai", TotalSeats: 500,
		Classes: model.SeatClasses{"AC": 100, "Sleeper": 200, "General": 200}, Fares: model.Fares{"AC": 2500, "Sleeper": 1500, "General": 500}, Schedule: sched("08:00", "20:00", "12h")},
	{TrainNo: "IR-002", Name: "Bangalore Express", Source: "Mumbai", Destination: "Bangalore", Route: "Mumbai -> Pune -> Belgaum -> Bangalore", TotalSeats: 400,
		Classes: model.SeatClasses{"AC": 80, "Sleeper": 160, "General": 160}, Fares: model.Fares{"AC": 2000, "Sleeper": 1200, "General": 400}, Schedule: sched("10:00", "22:00", "12h")},
	{TrainNo: "IR-003", Name: "Chennai Express", Source: "Delhi", Destination: "Chennai", Route: "Delhi -> Jaipur -> Hyderabad -> Chennai", TotalSeats: 450,
		Classes: model.SeatClasses{"AC": 90, "Sleeper": 180, "General": 180}, Fares: model.Fares{"AC": 3000, "Sleeper": 1800, "General": 600}, Schedule: sched("06:00", "18:00", "12h")},
	{TrainNo: "IR-004", Name: "Kolkata Express", Source: "Mumbai", Destination: "Kolkata", Route: "Mumbai -> Nagpur -> Raipur -> Kolkata", TotalSeats: 380,
		Classes: model.SeatClasses{"AC": 76, "Sleeper": 152, "General": 152}, Fares: model.Fares{"AC": 2200, "Sleeper": 1400, "General": 450}, Schedule: sched("12:00", "00:00", "12h")},
	{TrainNo: "IR-005", Name: "Goa Express", Source: "Bangalore", Destination: "Goa", Route: "Bangalore -> Hubli -> Goa", TotalSeats: 350,
		Classes: model.SeatClasses{"AC": 70, "Sleeper": 140, "General": 140}, Fares: model.Fares{"AC": 1500, "Sleeper": 900, "General": 300}, Schedule: sched("14:00", "23:00", "9h")},
	{TrainNo: "IR-006", Name: "Northern Star", Source: "Delhi", Destination: "Lucknow", Route: "Delhi -> Ghaziabad -> Moradabad -> Lucknow", TotalSeats: 420,
		Classes: model.SeatClasses{"AC": 90, "Sleeper": 180, "General": 150}, Fares: model.Fares{"AC": 1200, "Sleeper": 700, "General": 250}, Schedule: sched("09:00", "15:00", "6h")},
	{TrainNo: "IR-007", Name: "Coastal Runner", Source: "Mumbai", Destination: "Goa", Route: "Mumbai -> Ratnagiri -> Goa", TotalSeats: 360,
		Classes: model.SeatClasses{"AC": 60, "Sleeper": 150, "General": 150}, Fares: model.Fares{"AC": 1700, "Sleeper": 1000, "General": 350}, Schedule: sched("07:00", "13:00", "6h")},
	{TrainNo: "IR-008", Name: "Eastern Express", Source: "Kolkata", Destination: "Patna", Route: "Kolkata -> Bardhaman -> Patna", TotalSeats: 400,
		Classes: model.SeatClasses{"AC": 80, "Sleeper": 160, "General": 160}, Fares: model.Fares{"AC": 1400, "Sleeper": 850, "General": 300}, Schedule: sched("08:00", "14:00", "6h")},
	{TrainNo: "IR-009", Name: "Southern Arrow", Source: "Bangalore", Destination: "Chennai", Route: "Bangalore -> Hosur -> Salem -> Chennai", TotalSeats: 380,
		Classes: model.SeatClasses{"AC": 70, "Sleeper": 150, "General": 160}, Fares: model.Fares{"AC": 1100, "Sleeper": 700, "General": 250}, Schedule: sched("06:00", "12:00", "6h")},
	{TrainNo: "IR-010", Name: "Capital Connector", Source: "Delhi", Destination: "Jaipur", Route: "Delhi -> Gurgaon -> Jaipur", TotalSeats: 320,
		Classes: model.SeatClasses{"AC": 60, "Sleeper": 120, "General": 140}, Fares: model.Fares{"AC": 600, "Sleeper": 350, "General": 120}, Schedule: sched("05:00", "09:00", "4h")},
}

type seeder struct {
	txRepo    txrepo.TxRepository
	userRepo  userrepo.UserRepository
	trainRepo trainrepo.TrainRepository
	seatRepo  seatrepo.SeatRepository
	hashCost  int
	today     time.Time
}

func (s *seeder) run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedTrains(ctx)
}

// seedUsers creates the demo accounts that are not there yet.
func (s *seeder) seedUsers(ctx context.Context) error {
	for _, u := range users {
		existing, err := s.userRepo.Get(ctx, &model.UserFilter{Username: u.username})
		if err != nil {
			return err
		}
		if existing != nil {
			logger.Info("user already exists", zap.String("username", u.username))
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), s.hashCost)
		if err != nil {
			return err
		}
		_, err = s.userRepo.Create(ctx, &model.UserEntity{
			Username:     u.username,
			Email:        u.email,
			Phone:        u.phone,
			FullName:     u.fullName,
			PasswordHash: string(hash),
			IsAdmin:      u.isAdmin,
		})
		if err != nil {
			return err
		}
		logger.Info("created user", zap.String("username", u.username), zap.Bool("admin", u.isAdmin))
	}
	return nil
}

// seedTrains only runs on an empty trains table.
func (s *seeder) seedTrains(ctx context.Context) error {
	count, err := s.trainRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("trains already exist, skipping", zap.Int64("count", count))
		return nil
	}

	for i := range trains {
		t := trains[i]
		id, err := s.trainRepo.Create(ctx, &t)
		if err != nil {
			return err
		}
		t.ID = id
		if err := s.seedSeats(ctx, &t); err != nil {
			return err
		}
	}
	logger.Info("added sample trains", zap.Int("count", len(trains)), zap.Int("seat_days", seatDays))
	return nil
}

func (s *seeder) seedSeats(ctx context.Context, t *model.TrainEntity) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	first := s.today.AddDate(0, 0, 1)
	for d := 0; d < seatDays; d++ {
		date := first.AddDate(0, 0, d)
		for class, seats := range t.Classes {
			key := model.SeatKey{TrainID: t.ID, TravelDate: date, Class: class}
			if err := s.seatRepo.InitTx(ctx, tx, key, seats); err != nil {
				return err
			}
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}
