package seat

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/model"
)

type SeatRepository interface {
	Get(ctx context.Context, key model.SeatKey) (*model.SeatAvailability, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, key model.SeatKey) (*model.SeatAvailability, error)
	InitTx(ctx context.Context, tx *sqlx.Tx, key model.SeatKey, seatsLeft int) error
	AdjustTx(ctx context.Context, tx *sqlx.Tx, key model.SeatKey, delta int) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSeatRepository(conn *sqlx.DB) SeatRepository {
	return &SQL{conn: conn}
}

const (
	selectSeatQuery    = "SELECT id, train_id, travel_date, class, seats_left FROM seat_availability WHERE train_id = ? AND travel_date = ? AND class = ?"
	initSeatQuery      = "INSERT INTO seat_availability (train_id, travel_date, class, seats_left, updated_at) VALUES (?, ?, ?, ?, NOW()) ON DUPLICATE KEY UPDATE id = id"
	adjustSeatQuery    = "UPDATE seat_availability SET seats_left = seats_left + ?, updated_at = NOW() WHERE train_id = ? AND travel_date = ? AND class = ?"
	travelDateSQLStyle = "2006-01-02"
)

func (r *SQL) Get(ctx context.Context, key model.SeatKey) (*model.SeatAvailability, error) {
	var sa model.SeatAvailability
	err := r.conn.QueryRowxContext(ctx, selectSeatQuery, key.TrainID, key.TravelDate.Format(travelDateSQLStyle), key.Class).StructScan(&sa)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sa, nil
}

// GetForUpdateTx locks the availability row for the rest of tx.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, key model.SeatKey) (*model.SeatAvailability, error) {
	var sa model.SeatAvailability
	err := tx.QueryRowxContext(ctx, selectSeatQuery+" FOR UPDATE", key.TrainID, key.TravelDate.Format(travelDateSQLStyle), key.Class).StructScan(&sa)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sa, nil
}

// InitTx creates the availability row; a concurrent creator wins silently.
func (r *SQL) InitTx(ctx context.Context, tx *sqlx.Tx, key model.SeatKey, seatsLeft int) error {
	_, err := tx.ExecContext(ctx, initSeatQuery, key.TrainID, key.TravelDate.Format(travelDateSQLStyle), key.Class, seatsLeft)
	return err
}

func (r *SQL) AdjustTx(ctx context.Context, tx *sqlx.Tx, key model.SeatKey, delta int) error {
	_, err := tx.ExecContext(ctx, adjustSeatQuery, delta, key.TrainID, key.TravelDate.Format(travelDateSQLStyle), key.Class)
	return err
}
