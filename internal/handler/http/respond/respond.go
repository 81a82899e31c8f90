// Package respond writes JSON responses and maps errors to status
// codes, sanitizing anything that must not reach a client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON body with the given status code. A nil v
// sends the status line with no body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Status line is already on the wire; log and move on.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes the error message verbatim as {"error": ...}. Use only
// for messages produced by this codebase, never for wrapped driver
// errors; those go through SafeError.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeMarkers are substrings produced by the validation layer. An
// error message containing one is client-caused and safe to echo.
var safeMarkers = []string{
	"required",
	"invalid",
	"not found",
	"already",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"capacity exceeded",
	"validation error",
}

// SafeError echoes client-caused errors and masks everything else as
// "internal server error", logging the sanitized original. 5xx
// responses are always masked regardless of message content.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < 500 {
		msg := strings.ToLower(err.Error())
		for _, marker := range safeMarkers {
			if strings.Contains(msg, marker) {
				Error(w, code, err)
				return
			}
		}
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
