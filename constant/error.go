package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrInsufficientSeats
	ErrInvalidBookingStatus
	ErrAlreadyCancelled
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "username or email already exists",
	ErrInvalidPassword:      "password invalid",
	ErrForbidden:            "forbidden",
	ErrInsufficientSeats:    "not enough seats",
	ErrInvalidBookingStatus: "invalid booking status",
	ErrAlreadyCancelled:     "booking already cancelled",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrInsufficientSeats:    http.StatusBadRequest,
	ErrInvalidBookingStatus: http.StatusBadRequest,
	ErrAlreadyCancelled:     http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidPassword:      "0006",
	ErrForbidden:            "0007",
	ErrInsufficientSeats:    "0008",
	ErrInvalidBookingStatus: "0009",
	ErrAlreadyCancelled:     "0010",
}
