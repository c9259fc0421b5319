package model

import "time"

// SeatClasses maps a class code (AC, Sleeper, General...) to its seat count.
type SeatClasses = JSONMap[int]

// Fares maps a class code to the per-seat fare in rupees.
type Fares = JSONMap[float64]

// Schedule holds departure/arrival/duration strings.
type Schedule = JSONMap[string]

type TrainEntity struct {
	ID          uint64      `db:"id" json:"id"`
	TrainNo     string      `db:"train_no" json:"train_no"`
	Name        string      `db:"name" json:"name"`
	Source      string      `db:"source" json:"source"`
	Destination string      `db:"destination" json:"destination"`
	Route       string      `db:"route" json:"route"`
	TotalSeats  int         `db:"total_seats" json:"total_seats"`
	Classes     SeatClasses `db:"classes_json" json:"classes"`
	Fares       Fares       `db:"fare_json" json:"fare"`
	Schedule    Schedule    `db:"schedule_json" json:"schedule"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// TrainFilter narrows train queries; empty fields are ignored.
type TrainFilter struct {
	Source      string
	Destination string
}

type TrainRequest struct {
	TrainNo     string      `json:"train_no" validate:"required,max=20"`
	Name        string      `json:"name" validate:"required,max=150"`
	Source      string      `json:"source" validate:"required,max=100"`
	Destination string      `json:"destination" validate:"required,max=100"`
	Route       string      `json:"route"`
	TotalSeats  int         `json:"total_seats" validate:"gte=0"`
	Classes     SeatClasses `json:"classes_json"`
	Fares       Fares       `json:"fare_json"`
	Schedule    Schedule    `json:"schedule_json"`
}

// TrainUpdateRequest is a partial update; nil fields are left untouched.
type TrainUpdateRequest struct {
	Name        *string     `json:"name" validate:"omitempty,max=150"`
	Source      *string     `json:"source" validate:"omitempty,max=100"`
	Destination *string     `json:"destination" validate:"omitempty,max=100"`
	Route       *string     `json:"route"`
	TotalSeats  *int        `json:"total_seats" validate:"omitempty,gte=0"`
	Classes     SeatClasses `json:"classes_json"`
	Fares       Fares       `json:"fare_json"`
	Schedule    Schedule    `json:"schedule_json"`
}

type TrainSummary struct {
	ID          uint64      `json:"id"`
	TrainNo     string      `json:"train_no"`
	Name        string      `json:"name"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Classes     SeatClasses `json:"classes"`
}

type TrainDetail struct {
	ID          uint64      `json:"id"`
	TrainNo     string      `json:"train_no"`
	Name        string      `json:"name"`
	Source      string      `json:"source"`
	Destination string      `json:"destination"`
	Route       string      `json:"route"`
	Classes     SeatClasses `json:"classes"`
	Fare        Fares       `json:"fare"`
}

type SearchRequest struct {
	Source      string `json:"source"`
	Destination string `json:"dest"`
	Date        string `json:"date" validate:"omitempty,traveldate"`
}

type SearchResponse struct {
	Date    string         `json:"date,omitempty"`
	Results []TrainSummary `json:"results"`
}

type AvailabilityRequest struct {
	TrainID uint64
	Date    string `validate:"required,traveldate"`
	Class   string `validate:"required"`
}

type AvailabilityResponse struct {
	TrainID   uint64 `json:"train_id"`
	Date      string `json:"date"`
	Class     string `json:"class"`
	SeatsLeft *int   `json:"seats_left"`
}

type AddTrainResponse struct {
	Status  string `json:"status"`
	TrainID uint64 `json:"train_id"`
}

// ToSummary projects the entity onto its list representation.
func (t *TrainEntity) ToSummary() TrainSummary {
	return TrainSummary{
		ID:          t.ID,
		TrainNo:     t.TrainNo,
		Name:        t.Name,
		Source:      t.Source,
		Destination: t.Destination,
		Classes:     t.Classes,
	}
}
