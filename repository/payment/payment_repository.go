package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
)

type PaymentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.PaymentEntity) (uint64, error)
	UpdateStatusByBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID uint64, status constant.PaymentRecordStatus) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.PaymentEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO payments (booking_id, provider, provider_payment_id, amount, currency, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())",
		data.BookingID, data.Provider, data.ProviderPaymentID, data.Amount, data.Currency, data.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateStatusByBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID uint64, status constant.PaymentRecordStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE payments SET status = ? WHERE booking_id = ?", status, bookingID)
	return err
}
