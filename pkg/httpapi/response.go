// Package httpapi holds the HTTP plumbing shared by every resource handler.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/pkg/logger"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error" example:"Category not found by this ID"`
}

// MessageInvalidBody is returned for request bodies that are not valid JSON
const MessageInvalidBody = "Invalid request body"

// HeaderRowsAffected carries the matched row count of an update or delete
const HeaderRowsAffected = "X-Rows-Affected"

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Int("status", status).Msg("Failed to encode response")
	}
}

// RespondError sends {"error": message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// DecodeJSON decodes the request body into dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// PathID parses the numeric path variable name. ok is false when it is missing or not an id.
func PathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// SetRowsAffected records the matched row count on the response
func SetRowsAffected(w http.ResponseWriter, n int64) {
	w.Header().Set(HeaderRowsAffected, strconv.FormatInt(n, 10))
}

// ReportRowsAffected sets the row count header of an update or delete and warns when
// no row matched id. The response status is not affected.
func ReportRowsAffected(w http.ResponseWriter, r *http.Request, resource, op string, id uint, n int64) {
	SetRowsAffected(w, n)
	if n == 0 {
		logger.Warn(r.Context()).
			Str("resource", resource).
			Str("op", op).
			Uint("id", id).
			Msg("No rows matched")
	}
}
