package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appbooking "github.com/muhammadheryan/railway-reservation/application/booking"
	"github.com/muhammadheryan/railway-reservation/cmd/config"
	"github.com/muhammadheryan/railway-reservation/constant"
	publishermocks "github.com/muhammadheryan/railway-reservation/mocks/application/booking"
	bookingmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/booking"
	paymentmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/payment"
	seatmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/seat"
	trainmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/train"
	txmocks "github.com/muhammadheryan/railway-reservation/mocks/repository/tx"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/muhammadheryan/railway-reservation/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	txRepo      *txmocks.TxRepository
	trainRepo   *trainmocks.TrainRepository
	seatRepo    *seatmocks.SeatRepository
	bookingRepo *bookingmocks.BookingRepository
	paymentRepo *paymentmocks.PaymentRepository
	publisher   *publishermocks.HoldPublisher
}

func newApp(t *testing.T) (appbooking.BookingApp, deps) {
	d := deps{
		txRepo:      txmocks.NewTxRepository(t),
		trainRepo:   trainmocks.NewTrainRepository(t),
		seatRepo:    seatmocks.NewSeatRepository(t),
		bookingRepo: bookingmocks.NewBookingRepository(t),
		paymentRepo: paymentmocks.NewPaymentRepository(t),
		publisher:   publishermocks.NewHoldPublisher(t),
	}
	cfg := &config.Config{Booking: config.BookingConfig{HoldExpiration: 15 * time.Minute}}
	app := appbooking.NewBookingApp(cfg, d.txRepo, d.trainRepo, d.seatRepo, d.bookingRepo, d.paymentRepo, d.publisher)
	return app, d
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.Type()
}

var (
	tx         = &sqlx.Tx{}
	travelDate = time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	seatKey    = model.SeatKey{TrainID: 1, TravelDate: travelDate, Class: "AC"}
	train      = &model.TrainEntity{
		ID:          1,
		TrainNo:     "IR-001",
		Name:        "Express Alpha",
		Source:      "Delhi",
		Destination: "Mumbai",
		TotalSeats:  500,
		Classes:     model.SeatClasses{"AC": 100, "Sleeper": 200},
		Fares:       model.Fares{"AC": 2500, "Sleeper": 1500},
		Schedule:    model.Schedule{"departure": "06:00"},
	}
	owner = model.Actor{UserID: 7}
)

func TestBookingApp_Book(t *testing.T) {
	validReq := func() *model.BookRequest {
		return &model.BookRequest{UserID: 7, TrainID: 1, TravelDate: "2025-12-10", Class: "AC", SeatCount: 2}
	}

	tests := []struct {
		name     string
		req      *model.BookRequest
		mockCall func(d deps)
		wantFare float64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: existing seat row",
			req:  validReq(),
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(train, nil).Once()
				d.seatRepo.On("GetForUpdateTx", mock.Anything, tx, seatKey).Return(&model.SeatAvailability{SeatsLeft: 100}, nil).Once()
				d.seatRepo.On("AdjustTx", mock.Anything, tx, seatKey, -2).Return(nil).Once()
				d.bookingRepo.On("PNRExistsTx", mock.Anything, tx, mock.AnythingOfType("string")).Return(false, nil).Once()
				d.bookingRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(b *model.BookingEntity) bool {
					return len(b.PNR) == 10 && b.UserID == 7 && b.TotalFare == 5000 && b.FarePerSeat == 2500 &&
						b.Status == constant.BookingStatusConfirmed && b.PaymentStatus == constant.PaymentStatusPending
				})).Return(uint64(11), nil).Once()
				d.txRepo.On("CommitTx", tx).Return(nil).Once()
				d.publisher.On("PublishBookingHold", mock.MatchedBy(func(m rabbitmq.BookingHoldMessage) bool {
					return m.UserID == 7 && len(m.PNR) == 10 && m.ExpiresAt.After(time.Now())
				})).Return(nil).Once()
			},
			wantFare: 5000,
		},
		{
			name: "success: seat row initialised from class quota",
			req:  validReq(),
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(train, nil).Once()
				d.seatRepo.On("GetForUpdateTx", mock.Anything, tx, seatKey).Return(nil, nil).Once()
				d.seatRepo.On("InitTx", mock.Anything, tx, seatKey, 100).Return(nil).Once()
				d.seatRepo.On("GetForUpdateTx", mock.Anything, tx, seatKey).Return(&model.SeatAvailability{SeatsLeft: 100}, nil).Once()
				d.seatRepo.On("AdjustTx", mock.Anything, tx, seatKey, -2).Return(nil).Once()
				d.bookingRepo.On("PNRExistsTx", mock.Anything, tx, mock.AnythingOfType("string")).Return(false, nil).Once()
				d.bookingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(11), nil).Once()
				d.txRepo.On("CommitTx", tx).Return(nil).Once()
				d.publisher.On("PublishBookingHold", mock.Anything).Return(nil).Once()
			},
			wantFare: 5000,
		},
		{
			name: "success: pnr collision retried and publish failure ignored",
			req:  validReq(),
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(train, nil).Once()
				d.seatRepo.On("GetForUpdateTx", mock.Anything, tx, seatKey).Return(&model.SeatAvailability{SeatsLeft: 2}, nil).Once()
				d.seatRepo.On("AdjustTx", mock.Anything, tx, seatKey, -2).Return(nil).Once()
				d.bookingRepo.On("PNRExistsTx", mock.Anything, tx, mock.AnythingOfType("string")).Return(true, nil).Once()
				d.bookingRepo.On("PNRExistsTx", mock.Anything, tx, mock.AnythingOfType("string")).Return(false, nil).Once()
				d.bookingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(11), nil).Once()
				d.txRepo.On("CommitTx", tx).Return(nil).Once()
				d.publisher.On("PublishBookingHold", mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantFare: 5000,
		},
		{
			name:     "error: malformed travel date",
			req:      &model.BookRequest{UserID: 7, TrainID: 1, TravelDate: "10/12/2025", Class: "AC", SeatCount: 1},
			mockCall: func(d deps) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:     "error: zero seats",
			req:      &model.BookRequest{UserID: 7, TrainID: 1, TravelDate: "2025-12-10", Class: "AC"},
			mockCall: func(d deps) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: train not found",
			req:  validReq(),
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(nil, nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: class without fare",
			req:  &model.BookRequest{UserID: 7, TrainID: 1, TravelDate: "2025-12-10", Class: "General", SeatCount: 1},
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(train, nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: not enough seats",
			req:  validReq(),
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(train, nil).Once()
				d.seatRepo.On("GetForUpdateTx", mock.Anything, tx, seatKey).Return(&model.SeatAvailability{SeatsLeft: 1}, nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientSeats,
		},
		{
			name: "error: insert fails rolls back",
			req:  validReq(),
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.trainRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(train, nil).Once()
				d.seatRepo.On("GetForUpdateTx", mock.Anything, tx, seatKey).Return(&model.SeatAvailability{SeatsLeft: 10}, nil).Once()
				d.seatRepo.On("AdjustTx", mock.Anything, tx, seatKey, -2).Return(nil).Once()
				d.bookingRepo.On("PNRExistsTx", mock.Anything, tx, mock.AnythingOfType("string")).Return(false, nil).Once()
				d.bookingRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("deadlock")).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newApp(t)
			tt.mockCall(d)

			got, err := app.Book(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got.PNR, 10)
			assert.Equal(t, tt.wantFare, got.TotalFare)
			assert.Equal(t, constant.PaymentStatusPending, got.PaymentStatus)
		})
	}
}

func TestBookingApp_Pay(t *testing.T) {
	pending := func() *model.BookingEntity {
		return &model.BookingEntity{ID: 11, PNR: "ABCDE12345", UserID: 7, TotalFare: 5000,
			Status: constant.BookingStatusConfirmed, PaymentStatus: constant.PaymentStatusPending}
	}

	tests := []struct {
		name     string
		actor    model.Actor
		mockCall func(d deps)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			actor: owner,
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(pending(), nil).Once()
				d.paymentRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(p *model.PaymentEntity) bool {
					return p.BookingID == 11 && p.Amount == 5000 && p.Currency == "INR" &&
						p.Status == constant.PaymentRecordSuccess && p.ProviderPaymentID != ""
				})).Return(uint64(1), nil).Once()
				d.bookingRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(11), constant.BookingStatusConfirmed, constant.PaymentStatusPaid).Return(nil).Once()
				d.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:  "error: another user's booking",
			actor: model.Actor{UserID: 8},
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(pending(), nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:  "error: already paid",
			actor: owner,
			mockCall: func(d deps) {
				b := pending()
				b.PaymentStatus = constant.PaymentStatusPaid
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(b, nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidBookingStatus,
		},
		{
			name:  "error: unknown pnr",
			actor: owner,
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(nil, nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newApp(t)
			tt.mockCall(d)

			got, err := app.Pay(context.Background(), tt.actor, "ABCDE12345")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.PaymentStatusPaid, got.PaymentStatus)
			assert.Equal(t, 5000.0, got.Amount)
		})
	}
}

func TestBookingApp_Cancel(t *testing.T) {
	farAway := time.Now().UTC().AddDate(0, 0, 10)
	booking := func(pay constant.PaymentStatus) *model.BookingEntity {
		return &model.BookingEntity{ID: 11, PNR: "ABCDE12345", UserID: 7, TrainID: 1, TravelDate: farAway,
			Class: "AC", SeatCount: 2, TotalFare: 5000, Status: constant.BookingStatusConfirmed, PaymentStatus: pay}
	}
	key := model.SeatKey{TrainID: 1, TravelDate: farAway, Class: "AC"}

	tests := []struct {
		name       string
		actor      model.Actor
		mockCall   func(d deps)
		wantRefund string
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:  "success: paid booking refunded 90%",
			actor: owner,
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(booking(constant.PaymentStatusPaid), nil).Once()
				d.paymentRepo.On("UpdateStatusByBookingTx", mock.Anything, tx, uint64(11), constant.PaymentRecordRefunded).Return(nil).Once()
				d.bookingRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(11), constant.BookingStatusCancelled, constant.PaymentStatusRefunded).Return(nil).Once()
				d.seatRepo.On("AdjustTx", mock.Anything, tx, key, 2).Return(nil).Once()
				d.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantRefund: "4500.00",
		},
		{
			name:  "success: admin cancels unpaid booking without refund",
			actor: model.Actor{UserID: 1, IsAdmin: true},
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(booking(constant.PaymentStatusPending), nil).Once()
				d.bookingRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(11), constant.BookingStatusCancelled, constant.PaymentStatusPending).Return(nil).Once()
				d.seatRepo.On("AdjustTx", mock.Anything, tx, key, 2).Return(nil).Once()
				d.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantRefund: "0.00",
		},
		{
			name:  "error: already cancelled",
			actor: owner,
			mockCall: func(d deps) {
				b := booking(constant.PaymentStatusRefunded)
				b.Status = constant.BookingStatusCancelled
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(b, nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyCancelled,
		},
		{
			name:  "error: another user's booking",
			actor: model.Actor{UserID: 9},
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(booking(constant.PaymentStatusPaid), nil).Once()
				d.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:  "error: begin tx",
			actor: owner,
			mockCall: func(d deps) {
				d.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("pool exhausted")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, d := newApp(t)
			tt.mockCall(d)

			got, err := app.Cancel(context.Background(), tt.actor, "ABCDE12345")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cancelled", got.Status)
			assert.Equal(t, tt.wantRefund, got.RefundAmount)
		})
	}
}

func TestBookingApp_ExpireHold(t *testing.T) {
	b := &model.BookingEntity{ID: 11, PNR: "ABCDE12345", UserID: 7, TrainID: 1, TravelDate: travelDate, Class: "AC",
		SeatCount: 2, Status: constant.BookingStatusConfirmed, PaymentStatus: constant.PaymentStatusPending}

	t.Run("releases unpaid booking", func(t *testing.T) {
		app, d := newApp(t)
		d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(b, nil).Once()
		d.bookingRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(11), constant.BookingStatusCancelled, constant.PaymentStatusPending).Return(nil).Once()
		d.seatRepo.On("AdjustTx", mock.Anything, tx, seatKey, 2).Return(nil).Once()
		d.txRepo.On("CommitTx", tx).Return(nil).Once()

		assert.NoError(t, app.ExpireHold(context.Background(), "ABCDE12345"))
	})

	t.Run("paid booking left alone", func(t *testing.T) {
		app, d := newApp(t)
		paid := *b
		paid.PaymentStatus = constant.PaymentStatusPaid
		d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ABCDE12345").Return(&paid, nil).Once()
		d.txRepo.On("RollbackTx", tx).Return(nil).Once()

		assert.NoError(t, app.ExpireHold(context.Background(), "ABCDE12345"))
	})

	t.Run("unknown pnr", func(t *testing.T) {
		app, d := newApp(t)
		d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		d.bookingRepo.On("GetByPNRForUpdateTx", mock.Anything, tx, "ZZZ").Return(nil, nil).Once()
		d.txRepo.On("RollbackTx", tx).Return(nil).Once()

		err := app.ExpireHold(context.Background(), "ZZZ")
		assert.Equal(t, constant.ErrNotFound, errType(t, err))
	})
}

func TestBookingApp_Ticket(t *testing.T) {
	b := &model.BookingEntity{ID: 11, PNR: "ABCDE12345", UserID: 7, TrainID: 1, TravelDate: travelDate, Class: "AC",
		SeatCount: 2, FarePerSeat: 2500, TotalFare: 5000, Status: constant.BookingStatusConfirmed, PaymentStatus: constant.PaymentStatusPaid}

	t.Run("renders pdf", func(t *testing.T) {
		app, d := newApp(t)
		d.bookingRepo.On("GetByPNR", mock.Anything, "ABCDE12345").Return(b, nil).Once()
		d.trainRepo.On("GetByID", mock.Anything, uint64(1)).Return(train, nil).Once()

		got, err := app.Ticket(context.Background(), owner, "ABCDE12345")
		require.NoError(t, err)
		assert.Equal(t, "ticket_ABCDE12345.pdf", got.Filename)
		assert.True(t, len(got.Content) > 4 && string(got.Content[:4]) == "%PDF")
	})

	t.Run("forbidden for other users", func(t *testing.T) {
		app, d := newApp(t)
		d.bookingRepo.On("GetByPNR", mock.Anything, "ABCDE12345").Return(b, nil).Once()

		_, err := app.Ticket(context.Background(), model.Actor{UserID: 99}, "ABCDE12345")
		assert.Equal(t, constant.ErrForbidden, errType(t, err))
	})
}

func TestBookingApp_ListMine(t *testing.T) {
	app, d := newApp(t)
	d.bookingRepo.On("ListByUser", mock.Anything, uint64(7)).Return([]model.BookingEntity{{PNR: "A"}, {PNR: "B"}}, nil).Once()

	got, err := app.ListMine(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
