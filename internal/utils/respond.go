package utils

import (
	"encoding/json"
	"net/http"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON writes v with status. Responses are never cached: they depend on
// the unit, the measurements and the registered charts.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) error {
	return WriteJSON(w, status, ErrorBody{Error: msg})
}
