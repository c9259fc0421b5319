package train

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

var trainColumns = []string{"id", "train_no", "name", "source", "destination", "route", "total_seats", "classes_json", "fare_json", "schedule_json", "created_at"}

func newRepo(t *testing.T) (TrainRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTrainRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func trainRow(rows *sqlmock.Rows, id int64, no string) *sqlmock.Rows {
	return rows.AddRow(id, no, "Express Alpha", "Delhi", "Mumbai", "Delhi -> Mumbai", 500,
		[]byte(`{"AC":100,"Sleeper":200}`), []byte(`{"AC":2500,"Sleeper":1500}`), []byte(`{"departure":"08:00"}`),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestSQL_List(t *testing.T) {
	tests := []struct {
		name   string
		filter *model.TrainFilter
		query  string
		args   []interface{}
	}{
		{
			name:  "no filter",
			query: selectTrainBase + " ORDER BY id",
		},
		{
			name:   "source and destination",
			filter: &model.TrainFilter{Source: "Del", Destination: "MUM"},
			query:  selectTrainBase + " AND LOWER(source) LIKE ? AND LOWER(destination) LIKE ? ORDER BY id",
			args:   []interface{}{"%del%", "%mum%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			exp := mock.ExpectQuery(regexp.QuoteMeta(tt.query))
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args[0], tt.args[1])
			}
			exp.WillReturnRows(trainRow(trainRow(sqlmock.NewRows(trainColumns), 1, "IR-001"), 2, "IR-002"))

			got, err := repo.List(context.Background(), tt.filter)
			assert.NoError(t, err)
			assert.Len(t, got, 2)
			assert.Equal(t, "IR-002", got[1].TrainNo)
			assert.Equal(t, 100, got[0].Classes["AC"])
			assert.Equal(t, 1500.0, got[0].Fares["Sleeper"])
			assert.Equal(t, "08:00", got[0].Schedule["departure"])
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectTrainBase + " AND id = ?")).WithArgs(int64(1)).
		WillReturnRows(trainRow(sqlmock.NewRows(trainColumns), 1, "IR-001"))
	mock.ExpectQuery(regexp.QuoteMeta(selectTrainBase + " AND id = ?")).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(trainColumns))

	got, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Express Alpha", got.Name)

	missing, err := repo.GetByID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByIDTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewDb(db, "sqlmock")
	repo := NewTrainRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectTrainBase + " AND id = ?")).WithArgs(int64(1)).
		WillReturnRows(trainRow(sqlmock.NewRows(trainColumns), 1, "IR-001"))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	got, err := repo.GetByIDTx(context.Background(), tx, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_CreateUpdateDelete(t *testing.T) {
	repo, mock := newRepo(t)
	data := &model.TrainEntity{
		TrainNo:     "IR-011",
		Name:        "Night Owl",
		Source:      "Pune",
		Destination: "Nagpur",
		TotalSeats:  100,
		Classes:     model.SeatClasses{"General": 100},
		Fares:       model.Fares{"General": 300},
	}

	mock.ExpectExec(regexp.QuoteMeta(insertTrainQuery)).
		WithArgs("IR-011", "Night Owl", "Pune", "Nagpur", "", 100, []byte(`{"General":100}`), []byte(`{"General":300}`), []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateTrainQuery)).
		WithArgs("Night Owl", "Pune", "Nagpur", "", 100, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteTrainQuery)).WithArgs(int64(11)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteTrainQuery)).WithArgs(int64(12)).WillReturnResult(sqlmock.NewResult(0, 0))

	id, err := repo.Create(context.Background(), data)
	assert.NoError(t, err)
	assert.Equal(t, uint64(11), id)

	data.ID = id
	assert.NoError(t, repo.Update(context.Background(), data))

	ok, err := repo.Delete(context.Background(), 11)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 12)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Count(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(countTrainQuery)).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	n, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), n)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%delhi%", likePattern("Delhi"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}
