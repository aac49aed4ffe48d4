package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ssargent/brokkr/pkg/codec"
)

// apiKeyMiddleware guards the codec routes with the X-API-Key header.
// Pack and unpack are CPU-bound and cheap to spam, so the check runs
// before any request body is touched.
func apiKeyMiddleware(expectedKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Header.Get("X-API-Key") {
			case "":
				sendError(w, "Missing X-API-Key header", http.StatusUnauthorized)
			case expectedKey:
				next.ServeHTTP(w, r)
			default:
				sendError(w, "Invalid API key", http.StatusUnauthorized)
			}
		})
	}
}

// sendSuccess wraps data in the standard envelope
func sendSuccess(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// sendError reports a failure with an explicit status code
func sendError(w http.ResponseWriter, message string, statusCode int) {
	writeEnvelope(w, statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}

// sendCodecError reports a failed pack or unpack. The codec error
// taxonomy maps onto HTTP statuses: every kind a well-formed request can
// trigger (bad input values, truncated or trailing bytes, overlong
// varints) is the client's fault; anything outside the taxonomy would be
// a server bug.
func sendCodecError(w http.ResponseWriter, err error) {
	sendError(w, err.Error(), codecStatus(err))
}

func codecStatus(err error) int {
	var invalid *codec.InvalidInputError
	var oob *codec.OutOfBoundsError
	var overlong *codec.OverlongError
	var incomplete *codec.IncompleteParseError
	switch {
	case errors.As(err, &invalid),
		errors.As(err, &oob),
		errors.As(err, &overlong),
		errors.As(err, &incomplete):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeEnvelope(w http.ResponseWriter, statusCode int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}
