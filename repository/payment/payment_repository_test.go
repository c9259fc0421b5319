package payment

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_PaymentTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewDb(db, "sqlmock")
	repo := NewPaymentRepository(conn)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(int64(42), "TEST", "3f1c", 5000.0, "INR", "SUCCESS").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET status = ? WHERE booking_id = ?")).
		WithArgs("REFUNDED", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	id, err := repo.InsertTx(ctx, tx, &model.PaymentEntity{
		BookingID:         42,
		Provider:          "TEST",
		ProviderPaymentID: "3f1c",
		Amount:            5000,
		Currency:          "INR",
		Status:            constant.PaymentRecordSuccess,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(9), id)

	assert.NoError(t, repo.UpdateStatusByBookingTx(ctx, tx, 42, constant.PaymentRecordRefunded))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
