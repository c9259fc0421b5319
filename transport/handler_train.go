package transport

import (
	"net/http"

	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	validatorx "github.com/muhammadheryan/railway-reservation/utils/validator"
)

// ListTrains handler
// @Summary List trains
// @Tags Trains
// @Produce json
// @Success 200 {array} model.TrainSummary
// @Router /trains [get]
func (s *RestHandler) ListTrains(w http.ResponseWriter, r *http.Request) {
	res, err := s.TrainApp.ListTrains(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SearchTrains handler
// @Summary Search trains
// @Description Case-insensitive match on source and destination
// @Tags Trains
// @Produce json
// @Param source query string false "Source station"
// @Param dest query string false "Destination station"
// @Param date query string false "Travel date (YYYY-MM-DD)"
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (s *RestHandler) SearchTrains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.SearchRequest{
		Source:      q.Get("source"),
		Destination: q.Get("dest"),
		Date:        q.Get("date"),
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TrainApp.SearchTrains(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetTrain handler
// @Summary Train detail
// @Tags Trains
// @Produce json
// @Param id path int true "Train ID"
// @Success 200 {object} model.TrainDetail
// @Failure 404 {object} ErrorResponse
// @Router /train/{id} [get]
func (s *RestHandler) GetTrain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TrainApp.GetTrain(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CheckAvailability handler
// @Summary Seats left for a class on a date
// @Tags Trains
// @Produce json
// @Param id path int true "Train ID"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Param class query string true "Seat class"
// @Success 200 {object} model.AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /availability/{id} [get]
func (s *RestHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	req := model.AvailabilityRequest{TrainID: id, Date: q.Get("date"), Class: q.Get("class")}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TrainApp.CheckAvailability(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
