package seat

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seatColumns = []string{"id", "train_id", "travel_date", "class", "seats_left"}

func TestSQL_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSeatRepository(sqlx.NewDb(db, "sqlmock"))

	date := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	key := model.SeatKey{TrainID: 1, TravelDate: date, Class: "AC"}

	mock.ExpectQuery(regexp.QuoteMeta(selectSeatQuery)).WithArgs(int64(1), "2025-12-25", "AC").
		WillReturnRows(sqlmock.NewRows(seatColumns).AddRow(4, 1, date, "AC", 98))
	mock.ExpectQuery(regexp.QuoteMeta(selectSeatQuery)).WithArgs(int64(1), "2025-12-25", "AC").
		WillReturnRows(sqlmock.NewRows(seatColumns))

	got, err := repo.Get(context.Background(), key)
	assert.NoError(t, err)
	assert.Equal(t, 98, got.SeatsLeft)

	missing, err := repo.Get(context.Background(), key)
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_TxOperations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewDb(db, "sqlmock")
	repo := NewSeatRepository(conn)

	date := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	key := model.SeatKey{TrainID: 2, TravelDate: date, Class: "Sleeper"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectSeatQuery+" FOR UPDATE")).WithArgs(int64(2), "2025-12-25", "Sleeper").
		WillReturnRows(sqlmock.NewRows(seatColumns))
	mock.ExpectExec(regexp.QuoteMeta(initSeatQuery)).WithArgs(int64(2), "2025-12-25", "Sleeper", 200).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(adjustSeatQuery)).WithArgs(-3, int64(2), "2025-12-25", "Sleeper").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := conn.Beginx()
	require.NoError(t, err)

	row, err := repo.GetForUpdateTx(ctx, tx, key)
	assert.NoError(t, err)
	assert.Nil(t, row)
	assert.NoError(t, repo.InitTx(ctx, tx, key, 200))
	assert.NoError(t, repo.AdjustTx(ctx, tx, key, -3))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
