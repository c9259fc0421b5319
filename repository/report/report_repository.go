package report

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/railway-reservation/model"
)

type ReportRepository interface {
	Daily(ctx context.Context) ([]model.DailyReportItem, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewReportRepository(conn *sqlx.DB) ReportRepository {
	return &SQL{conn: conn}
}

const dailyReportQuery = `SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS d, COUNT(id) AS bookings, COALESCE(SUM(total_fare), 0) AS revenue
FROM bookings
GROUP BY d
ORDER BY d`

func (r *SQL) Daily(ctx context.Context) ([]model.DailyReportItem, error) {
	items := make([]model.DailyReportItem, 0)
	if err := r.conn.SelectContext(ctx, &items, dailyReportQuery); err != nil {
		return nil, err
	}
	return items, nil
}
