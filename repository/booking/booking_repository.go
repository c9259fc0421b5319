package booking

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.BookingEntity) (uint64, error)
	PNRExistsTx(ctx context.Context, tx *sqlx.Tx, pnr string) (bool, error)
	GetByPNR(ctx context.Context, pnr string) (*model.BookingEntity, error)
	GetByPNRForUpdateTx(ctx context.Context, tx *sqlx.Tx, pnr string) (*model.BookingEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, bookingID uint64, status constant.BookingStatus, paymentStatus constant.PaymentStatus) error
	ListByUser(ctx context.Context, userID uint64) ([]model.BookingEntity, error)
	Count(ctx context.Context) (int64, error)
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const (
	selectBookingBase = "SELECT id, pnr, user_id, train_id, travel_date, `class`, seat_count, fare_per_seat, total_fare, status, payment_status, created_at FROM bookings"
	insertBooking     = "INSERT INTO bookings (pnr, user_id, train_id, travel_date, `class`, seat_count, fare_per_seat, total_fare, status, payment_status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())"
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.BookingEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertBooking, data.PNR, data.UserID, data.TrainID, data.TravelDate.Format(constant.TravelDateLayout), data.Class, data.SeatCount, data.FarePerSeat, data.TotalFare, data.Status, data.PaymentStatus)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) PNRExistsTx(ctx context.Context, tx *sqlx.Tx, pnr string) (bool, error) {
	var n int64
	if err := tx.GetContext(ctx, &n, "SELECT COUNT(*) FROM bookings WHERE pnr = ?", pnr); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) GetByPNR(ctx context.Context, pnr string) (*model.BookingEntity, error) {
	var b model.BookingEntity
	if err := r.conn.QueryRowxContext(ctx, selectBookingBase+" WHERE pnr = ?", pnr).StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) GetByPNRForUpdateTx(ctx context.Context, tx *sqlx.Tx, pnr string) (*model.BookingEntity, error) {
	var b model.BookingEntity
	if err := tx.QueryRowxContext(ctx, selectBookingBase+" WHERE pnr = ? FOR UPDATE", pnr).StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, bookingID uint64, status constant.BookingStatus, paymentStatus constant.PaymentStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE bookings SET status = ?, payment_status = ? WHERE id = ?", status, paymentStatus, bookingID)
	return err
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.BookingEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, selectBookingBase+" WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.BookingEntity, 0)
	for rows.Next() {
		var b model.BookingEntity
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func (r *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM bookings"); err != nil {
		return 0, err
	}
	return total, nil
}
