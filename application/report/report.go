package report

import (
	"context"

	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	bookingrepo "github.com/muhammadheryan/railway-reservation/repository/booking"
	reportrepo "github.com/muhammadheryan/railway-reservation/repository/report"
	trainrepo "github.com/muhammadheryan/railway-reservation/repository/train"
	userrepo "github.com/muhammadheryan/railway-reservation/repository/user"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

type ReportApp interface {
	DailyReport(ctx context.Context) ([]model.DailyReportItem, error)
	Dashboard(ctx context.Context) (*model.DashboardSummary, error)
}

type reportAppImpl struct {
	reportRepo  reportrepo.ReportRepository
	trainRepo   trainrepo.TrainRepository
	bookingRepo bookingrepo.BookingRepository
	userRepo    userrepo.UserRepository
}

func NewReportApp(reportRepo reportrepo.ReportRepository, trainRepo trainrepo.TrainRepository, bookingRepo bookingrepo.BookingRepository, userRepo userrepo.UserRepository) ReportApp {
	return &reportAppImpl{
		reportRepo:  reportRepo,
		trainRepo:   trainRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

func (s *reportAppImpl) DailyReport(ctx context.Context) ([]model.DailyReportItem, error) {
	items, err := s.reportRepo.Daily(ctx)
	if err != nil {
		logger.Error("[DailyReport] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *reportAppImpl) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	trains, err := s.trainRepo.Count(ctx)
	if err != nil {
		logger.Error("[Dashboard] count trains", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	bookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		logger.Error("[Dashboard] count bookings", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	users, err := s.userRepo.Count(ctx)
	if err != nil {
		logger.Error("[Dashboard] count users", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DashboardSummary{TotalTrains: trains, TotalBookings: bookings, TotalUsers: users}, nil
}
