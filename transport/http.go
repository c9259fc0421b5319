package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	assistantapp "github.com/muhammadheryan/railway-reservation/application/assistant"
	bookingapp "github.com/muhammadheryan/railway-reservation/application/booking"
	reportapp "github.com/muhammadheryan/railway-reservation/application/report"
	trainapp "github.com/muhammadheryan/railway-reservation/application/train"
	userapp "github.com/muhammadheryan/railway-reservation/application/user"
	"github.com/muhammadheryan/railway-reservation/cmd/config"
	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	utilsContext "github.com/muhammadheryan/railway-reservation/utils/context"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	validatorx "github.com/muhammadheryan/railway-reservation/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	TrainApp     trainapp.TrainApp
	BookingApp   bookingapp.BookingApp
	ReportApp    reportapp.ReportApp
	AssistantApp assistantapp.AssistantApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	mux.HandleFunc("/healthz", rh.Healthz).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/trains", rh.ListTrains).Methods(http.MethodGet)
	mux.HandleFunc("/search", rh.SearchTrains).Methods(http.MethodGet)
	mux.HandleFunc("/train/{id:[0-9]+}", rh.GetTrain).Methods(http.MethodGet)
	mux.HandleFunc("/availability/{id:[0-9]+}", rh.CheckAvailability).Methods(http.MethodGet)
	mux.HandleFunc("/assistant/chat", rh.Chat).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/book/{id:[0-9]+}", rh.Book).Methods(http.MethodPost)
	mux.HandleFunc("/bookings", rh.ListBookings).Methods(http.MethodGet)
	mux.HandleFunc("/booking/{pnr}", rh.GetBooking).Methods(http.MethodGet)
	mux.HandleFunc("/booking/{pnr}/pay", rh.PayBooking).Methods(http.MethodPost)
	mux.HandleFunc("/cancel/{pnr}", rh.CancelBooking).Methods(http.MethodPost)
	mux.HandleFunc("/download_ticket/{pnr}", rh.DownloadTicket).Methods(http.MethodGet)

	// admin routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/train/add", rh.AddTrain).Methods(http.MethodPost)
	admin.HandleFunc("/train/{id:[0-9]+}/update", rh.UpdateTrain).Methods(http.MethodPost)
	admin.HandleFunc("/train/{id:[0-9]+}/delete", rh.DeleteTrain).Methods(http.MethodPost)
	admin.HandleFunc("/reports/daily", rh.DailyReport).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	admin.Use(AdminMiddleware(rh.UserApp))

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/booking/{pnr}/expire", rh.ExpireBooking).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))

	// middleware
	mux.Use(MetricsMiddleware())
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Healthz handler
// @Summary Liveness check
// @Tags Ops
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (s *RestHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, StatusResponse{Status: "ok"})
}

// Register handler
// @Summary Register user
// @Description Register a new passenger account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username or email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the current session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} ErrorResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, StatusResponse{Status: "logged out"})
}

// Chat handler
// @Summary Chat with the assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Chat Request"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Router /assistant/chat [post]
func (s *RestHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := s.AssistantApp.Reply(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// decodeAndValidate reads a JSON body into dst and runs the struct rules,
// writing ErrInvalidRequest on failure.
// normalizer is implemented by requests that clean their input before validation.
type normalizer interface {
	Normalize()
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	return true
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

// actor resolves the caller's identity and admin flag.
func (s *RestHandler) actor(r *http.Request) (model.Actor, error) {
	if a, ok := utilsContext.GetActor(r.Context()); ok {
		return a, nil
	}
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		return model.Actor{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	user, err := s.UserApp.GetUser(r.Context(), userID)
	if err != nil {
		return model.Actor{}, err
	}
	return model.Actor{UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}
