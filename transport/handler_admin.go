package transport

import (
	"net/http"

	"github.com/muhammadheryan/railway-reservation/model"
)

// AddTrain handler
// @Summary Add train
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TrainRequest true "Train"
// @Success 200 {object} model.AddTrainResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/train/add [post]
func (s *RestHandler) AddTrain(w http.ResponseWriter, r *http.Request) {
	var req model.TrainRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.TrainApp.AddTrain(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateTrain handler
// @Summary Update train
// @Description Partial update; omitted fields are kept
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Train ID"
// @Param request body model.TrainUpdateRequest true "Fields to change"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/train/{id}/update [post]
func (s *RestHandler) UpdateTrain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.TrainUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.TrainApp.UpdateTrain(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, StatusResponse{Status: "updated"})
}

// DeleteTrain handler
// @Summary Delete train
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Train ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/train/{id}/delete [post]
func (s *RestHandler) DeleteTrain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.TrainApp.DeleteTrain(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, StatusResponse{Status: "deleted"})
}

// DailyReport handler
// @Summary Bookings and revenue per day
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DailyReportItem
// @Router /admin/reports/daily [get]
func (s *RestHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportApp.DailyReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Dashboard handler
// @Summary Totals of trains, bookings and users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardSummary
// @Router /admin/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportApp.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
