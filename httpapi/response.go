package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	goCounter "github.com/MrEthical07/goCounter"
)

const (
	reasonNotFound    = "Resource was not found."
	reasonInvalidID   = "Invalid counter id."
	reasonUnavailable = "Counter store unavailable."
	reasonInternal    = "Internal server error."
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps engine errors onto HTTP status codes and reasons.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, goCounter.ErrInvalidID):
		return http.StatusBadRequest, reasonInvalidID
	case errors.Is(err, goCounter.ErrCounterNotFound):
		return http.StatusNotFound, reasonNotFound
	case errors.Is(err, goCounter.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, reasonUnavailable
	default:
		return http.StatusInternalServerError, reasonInternal
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, reason := statusFor(err)
	writeJSON(w, status, errorResponse{Status: "error", Reason: reason})
}
