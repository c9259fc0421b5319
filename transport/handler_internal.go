package transport

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ExpireBooking is called by the hold consumer once the payment window closes.
func (s *RestHandler) ExpireBooking(w http.ResponseWriter, r *http.Request) {
	if err := s.BookingApp.ExpireHold(r.Context(), mux.Vars(r)["pnr"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, StatusResponse{Status: "ok"})
}
