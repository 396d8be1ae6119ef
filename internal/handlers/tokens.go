package handlers

import (
	"net/http"

	applog "atelier/internal/log"
)

// Tokens serves the registry as JSON in declaration order.
func (h *Handlers) Tokens(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := h.tokens.MarshalJSON()
	if err != nil {
		applog.Error(r.Context(), "failed to encode tokens", "error", err)
		http.Error(w, "failed to encode tokens", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(body); err != nil {
		applog.Error(r.Context(), "failed to write tokens response", "error", err)
	}
}
