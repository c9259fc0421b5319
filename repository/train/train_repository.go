package train

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TrainRepository interface {
	List(ctx context.Context, filter *model.TrainFilter) ([]model.TrainEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.TrainEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.TrainEntity, error)
	Create(ctx context.Context, data *model.TrainEntity) (uint64, error)
	Update(ctx context.Context, data *model.TrainEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

func NewTrainRepository(conn *sqlx.DB) TrainRepository {
	return &SQL{conn: conn}
}

const (
	selectTrainBase  = `SELECT id, train_no, name, source, destination, route, total_seats, classes_json, fare_json, schedule_json, created_at FROM trains WHERE true`
	insertTrainQuery = `INSERT INTO trains (train_no, name, source, destination, route, total_seats, classes_json, fare_json, schedule_json, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updateTrainQuery = `UPDATE trains SET name = ?, source = ?, destination = ?, route = ?, total_seats = ?, classes_json = ?, fare_json = ?, schedule_json = ? WHERE id = ?`
	deleteTrainQuery = `DELETE FROM trains WHERE id = ?`
	countTrainQuery  = `SELECT COUNT(*) FROM trains`
)

// List returns trains whose source/destination contain the filter values,
// case-insensitively.
func (s *SQL) List(ctx context.Context, filter *model.TrainFilter) ([]model.TrainEntity, error) {
	query := selectTrainBase
	args := make([]any, 0, 2)

	if filter != nil && filter.Source != "" {
		query += " AND LOWER(source) LIKE ?"
		args = append(args, likePattern(filter.Source))
	}
	if filter != nil && filter.Destination != "" {
		query += " AND LOWER(destination) LIKE ?"
		args = append(args, likePattern(filter.Destination))
	}
	query += " ORDER BY id"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.TrainEntity, 0)
	for rows.Next() {
		var it model.TrainEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.TrainEntity, error) {
	var entity model.TrainEntity
	if err := s.conn.QueryRowxContext(ctx, selectTrainBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.TrainEntity, error) {
	var entity model.TrainEntity
	if err := tx.QueryRowxContext(ctx, selectTrainBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.TrainEntity) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertTrainQuery, data.TrainNo, data.Name, data.Source, data.Destination, data.Route, data.TotalSeats, data.Classes, data.Fares, data.Schedule)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, data *model.TrainEntity) error {
	_, err := s.conn.ExecContext(ctx, updateTrainQuery, data.Name, data.Source, data.Destination, data.Route, data.TotalSeats, data.Classes, data.Fares, data.Schedule, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteTrainQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countTrainQuery); err != nil {
		return 0, err
	}
	return total, nil
}

func likePattern(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(v)) + "%"
}
