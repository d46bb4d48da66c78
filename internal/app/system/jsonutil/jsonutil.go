// Package jsonutil provides helper functions for JSON API responses.
//
// Every response uses the same envelope: {"success": true, ...} on success,
// {"success": false, "error": message} on failure. Use these helpers in API
// handlers so the envelope shape stays consistent across endpoints.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Data writes a success envelope {"success": true, "data": data}.
func Data(w http.ResponseWriter, status int, data any) {
	JSON(w, status, map[string]any{
		"success": true,
		"data":    data,
	})
}

// List writes a success envelope for collection results:
// {"success": true, "count": n, "data": items}.
func List(w http.ResponseWriter, count int, items any) {
	JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   count,
		"data":    items,
	})
}

// Message writes a success envelope carrying a human-readable message
// instead of a data payload.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"success": true,
		"message": message,
	})
}

// Fail writes a failure envelope {"success": false, "error": message}.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// FailMessages writes a 400 failure envelope carrying one message per
// offending field, for store-level validation failures.
func FailMessages(w http.ResponseWriter, message string, messages []string) {
	JSON(w, http.StatusBadRequest, map[string]any{
		"success":  false,
		"error":    message,
		"messages": messages,
	})
}

// Decode reads and decodes JSON from the request body into v.
// Returns an error that can be passed to Fail if decoding fails.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
