package handlers

import (
	"net/http"
	"strings"

	applog "atelier/internal/log"
	"atelier/internal/metrics"
	"atelier/internal/views/theme"
)

const sessionThemeKey = "theme"

// themeKey returns the stored preference, then the client hint.
func (h *Handlers) themeKey(r *http.Request) string {
	if h.sessions != nil {
		if stored := h.sessions.GetString(r.Context(), sessionThemeKey); theme.Valid(stored) {
			return stored
		}
	}
	return theme.FromClientHint(r.Header.Get(clientHintHeader))
}

// UpdatePreferences stores the colour mode in the session. An empty theme
// field toggles the current mode.
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := strings.TrimSpace(r.FormValue("theme"))
	if themeValue == "" {
		themeValue = theme.Toggle(h.themeKey(r))
	}
	if !theme.Valid(themeValue) {
		applog.Debug(r.Context(), "received invalid theme selection", "value", themeValue)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}
	selected := theme.Resolve(themeValue)

	if h.sessions == nil {
		applog.Debug(r.Context(), "session manager not configured; preference not persisted")
	} else {
		h.sessions.Put(r.Context(), sessionThemeKey, selected.Key)
	}
	metrics.RecordThemeSelection(selected.Key)
	applog.Debug(r.Context(), "theme preference updated", "theme", selected.Key)

	redirectAfterPost(w, r, "/")
}
