package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/cmd/config"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	bookingrepo "github.com/muhammadheryan/railway-reservation/repository/booking"
	paymentrepo "github.com/muhammadheryan/railway-reservation/repository/payment"
	seatrepo "github.com/muhammadheryan/railway-reservation/repository/seat"
	trainrepo "github.com/muhammadheryan/railway-reservation/repository/train"
	txrepo "github.com/muhammadheryan/railway-reservation/repository/tx"
	"github.com/muhammadheryan/railway-reservation/thirdparty/rabbitmq"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"github.com/muhammadheryan/railway-reservation/utils/metrics"
	"go.uber.org/zap"
)

type BookingApp interface {
	Book(ctx context.Context, req *model.BookRequest) (*model.BookResponse, error)
	Pay(ctx context.Context, actor model.Actor, pnr string) (*model.PayResponse, error)
	Cancel(ctx context.Context, actor model.Actor, pnr string) (*model.CancelResponse, error)
	ExpireHold(ctx context.Context, pnr string) error
	Get(ctx context.Context, actor model.Actor, pnr string) (*model.BookingEntity, error)
	ListMine(ctx context.Context, userID uint64) ([]model.BookingEntity, error)
	Ticket(ctx context.Context, actor model.Actor, pnr string) (*model.Ticket, error)
}

// HoldPublisher schedules the release of an unpaid booking.
type HoldPublisher interface {
	PublishBookingHold(msg rabbitmq.BookingHoldMessage) error
}

type bookingAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	trainRepo   trainrepo.TrainRepository
	seatRepo    seatrepo.SeatRepository
	bookingRepo bookingrepo.BookingRepository
	paymentRepo paymentrepo.PaymentRepository
	publisher   HoldPublisher
}

func NewBookingApp(config *config.Config, txRepo txrepo.TxRepository, trainRepo trainrepo.TrainRepository, seatRepo seatrepo.SeatRepository, bookingRepo bookingrepo.BookingRepository, paymentRepo paymentrepo.PaymentRepository, publisher HoldPublisher) BookingApp {
	return &bookingAppImpl{
		config:      config,
		txRepo:      txRepo,
		trainRepo:   trainRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
	}
}

func (s *bookingAppImpl) Book(ctx context.Context, req *model.BookRequest) (*model.BookResponse, error) {
	travelDate, err := time.Parse(constant.TravelDateLayout, req.TravelDate)
	if err != nil || req.SeatCount <= 0 || req.Class == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Book] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	train, err := s.trainRepo.GetByIDTx(ctx, tx, req.TrainID)
	if err != nil {
		logger.Error("[Book] get train", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if train == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	fare, ok := train.Fares[req.Class]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	key := model.SeatKey{TrainID: train.ID, TravelDate: travelDate, Class: req.Class}
	sa, err := s.seatRepo.GetForUpdateTx(ctx, tx, key)
	if err != nil {
		logger.Error("[Book] lock seats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sa == nil {
		if err := s.seatRepo.InitTx(ctx, tx, key, initialSeats(train, req.Class)); err != nil {
			logger.Error("[Book] init seats", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		sa, err = s.seatRepo.GetForUpdateTx(ctx, tx, key)
		if err != nil || sa == nil {
			logger.Error("[Book] relock seats", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if sa.SeatsLeft < req.SeatCount {
		logger.Info("[Book] insufficient seats", zap.Uint64("train_id", train.ID), zap.String("class", req.Class), zap.Int("need", req.SeatCount), zap.Int("available", sa.SeatsLeft))
		return nil, errors.SetCustomError(constant.ErrInsufficientSeats)
	}

	if err := s.seatRepo.AdjustTx(ctx, tx, key, -req.SeatCount); err != nil {
		logger.Error("[Book] decrement seats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	pnr, err := s.uniquePNR(ctx, tx)
	if err != nil {
		logger.Error("[Book] generate pnr", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	farePaise := toPaise(fare)
	booking := &model.BookingEntity{
		PNR:           pnr,
		UserID:        req.UserID,
		TrainID:       train.ID,
		TravelDate:    travelDate,
		Class:         req.Class,
		SeatCount:     req.SeatCount,
		FarePerSeat:   fromPaise(farePaise),
		TotalFare:     fromPaise(farePaise * int64(req.SeatCount)),
		Status:        constant.BookingStatusConfirmed,
		PaymentStatus: constant.PaymentStatusPending,
	}
	if _, err := s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
		logger.Error("[Book] insert booking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Book] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.BookingsCreated.Inc()
	metrics.SeatsReserved.Add(float64(req.SeatCount))

	expiresAt := time.Now().Add(s.config.Booking.HoldExpiration)
	if s.publisher != nil {
		msg := rabbitmq.BookingHoldMessage{PNR: pnr, UserID: req.UserID, ExpiresAt: expiresAt}
		if err := s.publisher.PublishBookingHold(msg); err != nil {
			logger.Error("[Book] publish booking hold", zap.String("pnr", pnr), zap.String("error", err.Error()))
		}
	}

	return &model.BookResponse{
		PNR:           pnr,
		TotalFare:     booking.TotalFare,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		HoldExpiresAt: expiresAt,
	}, nil
}

func (s *bookingAppImpl) Pay(ctx context.Context, actor model.Actor, pnr string) (*model.PayResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Pay] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	booking, err := s.bookingRepo.GetByPNRForUpdateTx(ctx, tx, pnr)
	if err != nil {
		logger.Error("[Pay] get booking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.CanAccess(booking.UserID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if booking.Status != constant.BookingStatusConfirmed || booking.PaymentStatus != constant.PaymentStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidBookingStatus)
	}

	payment := &model.PaymentEntity{
		BookingID:         booking.ID,
		Provider:          constant.PaymentProviderTest,
		ProviderPaymentID: uuid.NewString(),
		Amount:            booking.TotalFare,
		Currency:          constant.DefaultCurrency,
		Status:            constant.PaymentRecordSuccess,
	}
	if _, err := s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
		logger.Error("[Pay] insert payment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.bookingRepo.UpdateStatusTx(ctx, tx, booking.ID, constant.BookingStatusConfirmed, constant.PaymentStatusPaid); err != nil {
		logger.Error("[Pay] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Pay] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.PayResponse{
		PNR:               booking.PNR,
		PaymentStatus:     constant.PaymentStatusPaid,
		ProviderPaymentID: payment.ProviderPaymentID,
		Amount:            payment.Amount,
	}, nil
}

// Cancel releases the seats of a booking. Only paid bookings earn a refund.
func (s *bookingAppImpl) Cancel(ctx context.Context, actor model.Actor, pnr string) (*model.CancelResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Cancel] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	booking, err := s.bookingRepo.GetByPNRForUpdateTx(ctx, tx, pnr)
	if err != nil {
		logger.Error("[Cancel] get booking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.CanAccess(booking.UserID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if booking.Status == constant.BookingStatusCancelled {
		return nil, errors.SetCustomError(constant.ErrAlreadyCancelled)
	}

	var refund int64
	paymentStatus := booking.PaymentStatus
	if booking.PaymentStatus == constant.PaymentStatusPaid {
		refund = calculateRefund(booking.TotalFare, booking.TravelDate, time.Now().UTC())
		paymentStatus = constant.PaymentStatusRefunded
		if err := s.paymentRepo.UpdateStatusByBookingTx(ctx, tx, booking.ID, constant.PaymentRecordRefunded); err != nil {
			logger.Error("[Cancel] update payment", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.release(ctx, tx, booking, paymentStatus); err != nil {
		logger.Error("[Cancel] release booking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Cancel] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.BookingsCancelled.WithLabelValues("user").Inc()

	return &model.CancelResponse{Status: "cancelled", RefundAmount: formatPaise(refund)}, nil
}

// ExpireHold cancels a booking that is still unpaid. Anything else is left alone.
func (s *bookingAppImpl) ExpireHold(ctx context.Context, pnr string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ExpireHold] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	booking, err := s.bookingRepo.GetByPNRForUpdateTx(ctx, tx, pnr)
	if err != nil {
		logger.Error("[ExpireHold] get booking", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if booking.Status != constant.BookingStatusConfirmed || booking.PaymentStatus != constant.PaymentStatusPending {
		return nil
	}

	if err := s.release(ctx, tx, booking, constant.PaymentStatusPending); err != nil {
		logger.Error("[ExpireHold] release booking", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ExpireHold] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.BookingsCancelled.WithLabelValues("hold_expired").Inc()
	logger.Info("[ExpireHold] released unpaid booking", zap.String("pnr", pnr), zap.Int("seats", booking.SeatCount))
	return nil
}

func (s *bookingAppImpl) Get(ctx context.Context, actor model.Actor, pnr string) (*model.BookingEntity, error) {
	booking, err := s.bookingRepo.GetByPNR(ctx, pnr)
	if err != nil {
		logger.Error("[Get] get booking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.CanAccess(booking.UserID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return booking, nil
}

func (s *bookingAppImpl) ListMine(ctx context.Context, userID uint64) ([]model.BookingEntity, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListMine] list bookings", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return bookings, nil
}

func (s *bookingAppImpl) Ticket(ctx context.Context, actor model.Actor, pnr string) (*model.Ticket, error) {
	booking, err := s.Get(ctx, actor, pnr)
	if err != nil {
		return nil, err
	}

	train, err := s.trainRepo.GetByID(ctx, booking.TrainID)
	if err != nil {
		logger.Error("[Ticket] get train", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if train == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	ticket, err := buildTicketPDF(booking, train)
	if err != nil {
		logger.Error("[Ticket] build pdf", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return ticket, nil
}

// release marks the booking cancelled and hands its seats back.
func (s *bookingAppImpl) release(ctx context.Context, tx *sqlx.Tx, booking *model.BookingEntity, paymentStatus constant.PaymentStatus) error {
	if err := s.bookingRepo.UpdateStatusTx(ctx, tx, booking.ID, constant.BookingStatusCancelled, paymentStatus); err != nil {
		return err
	}
	key := model.SeatKey{TrainID: booking.TrainID, TravelDate: booking.TravelDate, Class: booking.Class}
	return s.seatRepo.AdjustTx(ctx, tx, key, booking.SeatCount)
}

func (s *bookingAppImpl) uniquePNR(ctx context.Context, tx *sqlx.Tx) (string, error) {
	for i := 0; i < pnrAttempts; i++ {
		pnr := generatePNR()
		exists, err := s.bookingRepo.PNRExistsTx(ctx, tx, pnr)
		if err != nil {
			return "", err
		}
		if !exists {
			return pnr, nil
		}
	}
	return "", errPNRExhausted
}

// initialSeats sizes a fresh availability row: the class quota when the
// train lists classes, otherwise the whole train.
func initialSeats(train *model.TrainEntity, class string) int {
	if n, ok := train.Classes[class]; ok {
		return n
	}
	if len(train.Classes) == 0 {
		return train.TotalSeats
	}
	return 0
}
