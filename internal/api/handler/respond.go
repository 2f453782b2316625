package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the body. Every route here reports live state,
// so responses are marked uncacheable.
func respondJSON(w http.ResponseWriter, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
