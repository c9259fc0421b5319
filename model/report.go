package model

type DailyReportItem struct {
	Date     string  `db:"d" json:"date"`
	Bookings int64   `db:"bookings" json:"bookings"`
	Revenue  float64 `db:"revenue" json:"revenue"`
}

type DashboardSummary struct {
	TotalTrains   int64 `json:"total_trains"`
	TotalBookings int64 `json:"total_bookings"`
	TotalUsers    int64 `json:"total_users"`
}
