package model

import (
	"time"

	"github.com/muhammadheryan/railway-reservation/constant"
)

type BookingEntity struct {
	ID            uint64                 `db:"id" json:"id"`
	PNR           string                 `db:"pnr" json:"pnr"`
	UserID        uint64                 `db:"user_id" json:"user_id"`
	TrainID       uint64                 `db:"train_id" json:"train_id"`
	TravelDate    time.Time              `db:"travel_date" json:"travel_date"`
	Class         string                 `db:"class" json:"class"`
	SeatCount     int                    `db:"seat_count" json:"seat_count"`
	FarePerSeat   float64                `db:"fare_per_seat" json:"fare_per_seat"`
	TotalFare     float64                `db:"total_fare" json:"total_fare"`
	Status        constant.BookingStatus `db:"status" json:"status"`
	PaymentStatus constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	CreatedAt     time.Time              `db:"created_at" json:"created_at"`
}

type BookRequest struct {
	UserID     uint64 `json:"-"`
	TrainID    uint64 `json:"-"`
	TravelDate string `json:"travel_date" validate:"required,traveldate"`
	Class      string `json:"class" validate:"required,max=10"`
	SeatCount  int    `json:"seat_count" validate:"required,gt=0"`
}

type BookResponse struct {
	PNR           string                 `json:"pnr"`
	TotalFare     float64                `json:"total_fare"`
	Status        constant.BookingStatus `json:"status"`
	PaymentStatus constant.PaymentStatus `json:"payment_status"`
	HoldExpiresAt time.Time              `json:"hold_expires_at"`
}

type CancelResponse struct {
	Status       string `json:"status"`
	RefundAmount string `json:"refund_amount"`
}

type SeatAvailability struct {
	ID         uint64    `db:"id"`
	TrainID    uint64    `db:"train_id"`
	TravelDate time.Time `db:"travel_date"`
	Class      string    `db:"class"`
	SeatsLeft  int       `db:"seats_left"`
}

// SeatKey identifies one availability row.
type SeatKey struct {
	TrainID    uint64
	TravelDate time.Time
	Class      string
}

type PaymentEntity struct {
	ID                uint64                       `db:"id" json:"id"`
	BookingID         uint64                       `db:"booking_id" json:"booking_id"`
	Provider          string                       `db:"provider" json:"provider"`
	ProviderPaymentID string                       `db:"provider_payment_id" json:"provider_payment_id"`
	Amount            float64                      `db:"amount" json:"amount"`
	Currency          string                       `db:"currency" json:"currency"`
	Status            constant.PaymentRecordStatus `db:"status" json:"status"`
	CreatedAt         time.Time                    `db:"created_at" json:"created_at"`
}

type PayResponse struct {
	PNR               string                 `json:"pnr"`
	PaymentStatus     constant.PaymentStatus `json:"payment_status"`
	ProviderPaymentID string                 `json:"provider_payment_id"`
	Amount            float64                `json:"amount"`
}

// Ticket is a rendered e-ticket document.
type Ticket struct {
	Filename string
	Content  []byte
}
