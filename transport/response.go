package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse acknowledges operations that return nothing else.
type StatusResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("[writeJSON] encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeError maps application errors to their HTTP status. Anything that is
// not a CustomError is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	ce := errors.From(err)
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{Code: ce.ErrorCode(), Message: ce.Error()})
}
