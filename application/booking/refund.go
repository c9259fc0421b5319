package booking

import (
	"fmt"
	"math"
	"time"
)

// refundPercent applies the cancellation schedule: more than three days
// before travel 90%, one to three days 50%, otherwise 25%.
func refundPercent(travelDate, cancelDate time.Time) int64 {
	days := daysBetween(cancelDate, travelDate)
	switch {
	case days > 3:
		return 90
	case days >= 1:
		return 50
	default:
		return 25
	}
}

// calculateRefund returns the refund in paise, rounded half-up.
func calculateRefund(totalFare float64, travelDate, cancelDate time.Time) int64 {
	return (toPaise(totalFare)*refundPercent(travelDate, cancelDate) + 50) / 100
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromPaise(p int64) float64 {
	return float64(p) / 100
}

func formatPaise(p int64) string {
	return fmt.Sprintf("%d.%02d", p/100, p%100)
}
