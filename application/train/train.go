package train

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/railway-reservation/cmd/config"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	redisrepo "github.com/muhammadheryan/railway-reservation/repository/redis"
	seatrepo "github.com/muhammadheryan/railway-reservation/repository/seat"
	trainrepo "github.com/muhammadheryan/railway-reservation/repository/train"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

const searchVersionKey = "search:version"

type TrainApp interface {
	ListTrains(ctx context.Context) ([]model.TrainSummary, error)
	GetTrain(ctx context.Context, id uint64) (*model.TrainDetail, error)
	SearchTrains(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error)
	CheckAvailability(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error)
	AddTrain(ctx context.Context, req *model.TrainRequest) (*model.AddTrainResponse, error)
	UpdateTrain(ctx context.Context, id uint64, req *model.TrainUpdateRequest) error
	DeleteTrain(ctx context.Context, id uint64) error
}

type trainAppImpl struct {
	config    *config.Config
	trainRepo trainrepo.TrainRepository
	seatRepo  seatrepo.SeatRepository
	redisRepo redisrepo.Repository
}

func NewTrainApp(config *config.Config, trainRepo trainrepo.TrainRepository, seatRepo seatrepo.SeatRepository, redisRepo redisrepo.Repository) TrainApp {
	return &trainAppImpl{config: config, trainRepo: trainRepo, seatRepo: seatRepo, redisRepo: redisRepo}
}

func (s *trainAppImpl) ListTrains(ctx context.Context) ([]model.TrainSummary, error) {
	trains, err := s.trainRepo.List(ctx, nil)
	if err != nil {
		logger.Error("[ListTrains] err trainRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return summaries(trains), nil
}

func (s *trainAppImpl) GetTrain(ctx context.Context, id uint64) (*model.TrainDetail, error) {
	t, err := s.trainRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetTrain] err trainRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return &model.TrainDetail{
		ID:          t.ID,
		TrainNo:     t.TrainNo,
		Name:        t.Name,
		Source:      t.Source,
		Destination: t.Destination,
		Route:       t.Route,
		Classes:     t.Classes,
		Fare:        t.Fares,
	}, nil
}

// SearchTrains matches source and destination as case-insensitive substrings.
// Results are cached per (source, destination) under the current search
// version; the date only travels back to the caller.
func (s *trainAppImpl) SearchTrains(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	source := strings.TrimSpace(req.Source)
	dest := strings.TrimSpace(req.Destination)
	key := s.searchKey(ctx, source, dest)

	var cached []model.TrainSummary
	err := s.redisRepo.GetJSON(ctx, key, &cached)
	if err == nil {
		return &model.SearchResponse{Date: req.Date, Results: cached}, nil
	}
	if !stderrors.Is(err, redisrepo.ErrCacheMiss) {
		logger.Warn("[SearchTrains] err redisRepo.GetJSON", zap.String("error", err.Error()))
	}

	trains, err := s.trainRepo.List(ctx, &model.TrainFilter{Source: source, Destination: dest})
	if err != nil {
		logger.Error("[SearchTrains] err trainRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	results := summaries(trains)

	if err := s.redisRepo.SetJSON(ctx, key, results, s.config.Booking.SearchCacheTTL); err != nil {
		logger.Warn("[SearchTrains] err redisRepo.SetJSON", zap.String("error", err.Error()))
	}

	return &model.SearchResponse{Date: req.Date, Results: results}, nil
}

func (s *trainAppImpl) CheckAvailability(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error) {
	if req.Date == "" || req.Class == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	travelDate, err := time.Parse(constant.TravelDateLayout, req.Date)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	sa, err := s.seatRepo.Get(ctx, model.SeatKey{TrainID: req.TrainID, TravelDate: travelDate, Class: req.Class})
	if err != nil {
		logger.Error("[CheckAvailability] err seatRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.AvailabilityResponse{TrainID: req.TrainID, Date: req.Date, Class: req.Class}
	if sa != nil {
		left := sa.SeatsLeft
		resp.SeatsLeft = &left
	}
	return resp, nil
}

func (s *trainAppImpl) AddTrain(ctx context.Context, req *model.TrainRequest) (*model.AddTrainResponse, error) {
	entity := &model.TrainEntity{
		TrainNo:     req.TrainNo,
		Name:        req.Name,
		Source:      req.Source,
		Destination: req.Destination,
		Route:       req.Route,
		TotalSeats:  req.TotalSeats,
		Classes:     orEmpty(req.Classes),
		Fares:       orEmpty(req.Fares),
		Schedule:    orEmpty(req.Schedule),
	}
	id, err := s.trainRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[AddTrain] err trainRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.invalidateSearch(ctx)
	return &model.AddTrainResponse{Status: "ok", TrainID: id}, nil
}

func (s *trainAppImpl) UpdateTrain(ctx context.Context, id uint64, req *model.TrainUpdateRequest) error {
	t, err := s.trainRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateTrain] err trainRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	applyUpdate(t, req)

	if err := s.trainRepo.Update(ctx, t); err != nil {
		logger.Error("[UpdateTrain] err trainRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.invalidateSearch(ctx)
	return nil
}

func (s *trainAppImpl) DeleteTrain(ctx context.Context, id uint64) error {
	deleted, err := s.trainRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteTrain] err trainRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	s.invalidateSearch(ctx)
	return nil
}

func (s *trainAppImpl) searchKey(ctx context.Context, source, dest string) string {
	version, err := s.redisRepo.Get(ctx, searchVersionKey)
	if err != nil {
		version = "0"
	}
	// Parts are query-escaped so a '|' inside a city name cannot shift the separator.
	return fmt.Sprintf("search:%s:%s|%s", version,
		url.QueryEscape(strings.ToLower(source)), url.QueryEscape(strings.ToLower(dest)))
}

// invalidateSearch bumps the search namespace so older entries are never read again.
func (s *trainAppImpl) invalidateSearch(ctx context.Context) {
	if _, err := s.redisRepo.Incr(ctx, searchVersionKey); err != nil {
		logger.Warn("[invalidateSearch] err redisRepo.Incr", zap.String("error", err.Error()))
	}
}

func applyUpdate(t *model.TrainEntity, req *model.TrainUpdateRequest) {
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Source != nil {
		t.Source = *req.Source
	}
	if req.Destination != nil {
		t.Destination = *req.Destination
	}
	if req.Route != nil {
		t.Route = *req.Route
	}
	if req.TotalSeats != nil {
		t.TotalSeats = *req.TotalSeats
	}
	if req.Classes != nil {
		t.Classes = req.Classes
	}
	if req.Fares != nil {
		t.Fares = req.Fares
	}
	if req.Schedule != nil {
		t.Schedule = req.Schedule
	}
}

func summaries(trains []model.TrainEntity) []model.TrainSummary {
	out := make([]model.TrainSummary, 0, len(trains))
	for i := range trains {
		out = append(out, trains[i].ToSummary())
	}
	return out
}

func orEmpty[V any](m model.JSONMap[V]) model.JSONMap[V] {
	if m == nil {
		return model.JSONMap[V]{}
	}
	return m
}
