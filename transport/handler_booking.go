package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	utilsContext "github.com/muhammadheryan/railway-reservation/utils/context"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

// Book handler
// @Summary Book seats
// @Description Reserve seats; the booking stays PENDING until paid or the hold expires
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Train ID"
// @Param request body model.BookRequest true "Book Request"
// @Success 200 {object} model.BookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /book/{id} [post]
func (s *RestHandler) Book(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trainID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	req.UserID = userID
	req.TrainID = trainID

	res, err := s.BookingApp.Book(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListBookings handler
// @Summary My bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.BookingEntity
// @Router /bookings [get]
func (s *RestHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.BookingApp.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBooking handler
// @Summary Booking by PNR
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} model.BookingEntity
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /booking/{pnr} [get]
func (s *RestHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, err := s.actor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.Get(r.Context(), actor, mux.Vars(r)["pnr"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PayBooking handler
// @Summary Pay for a booking
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} model.PayResponse
// @Failure 400 {object} ErrorResponse
// @Router /booking/{pnr}/pay [post]
func (s *RestHandler) PayBooking(w http.ResponseWriter, r *http.Request) {
	actor, err := s.actor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.Pay(r.Context(), actor, mux.Vars(r)["pnr"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CancelBooking handler
// @Summary Cancel a booking
// @Description Refund is 90% more than 3 days before travel, 50% from 1 day, else 25%
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} model.CancelResponse
// @Failure 400 {object} ErrorResponse
// @Router /cancel/{pnr} [post]
func (s *RestHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, err := s.actor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.Cancel(r.Context(), actor, mux.Vars(r)["pnr"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DownloadTicket handler
// @Summary Download e-ticket
// @Tags Bookings
// @Produce application/pdf
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /download_ticket/{pnr} [get]
func (s *RestHandler) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	actor, err := s.actor(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ticket, err := s.BookingApp.Ticket(r.Context(), actor, mux.Vars(r)["pnr"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ticket.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(ticket.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(ticket.Content); err != nil {
		logger.Error("[DownloadTicket] write", zap.String("error", err.Error()))
	}
}
