package web

// errors.go provides unified error response handling for the web layer.
//
// Only transport-tier failures reach these helpers: missing file, wrong
// extension, oversize body, unparsable workbook. Domain validation findings
// never become HTTP errors — they travel inside a successful response, on
// the rows they belong to.

import (
	"encoding/json"
	"net/http"

	"github.com/YasserHifzy202/poultry-backend/internal/logging"
)

// Error codes returned to clients for support reference.
const (
	codeNoFile       = "FILE001"
	codeBadExtension = "FILE002"
	codeUnreadable   = "FILE003"
	codeTooLarge     = "FILE004"
	codeRateLimited  = "RATE001"
)

// ErrorResponse is the JSON body for a rejected request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// respondError logs the failure with request context and writes a coded JSON
// error body.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	logging.FromContext(r.Context()).Error("request rejected",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", code,
		"error", message,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Message: message,
		Code:    code,
	})
}

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
