package handlers

import (
	"net/http"
	"time"

	applog "atelier/internal/log"
	"atelier/internal/metrics"
	"atelier/internal/views/layout"
	"atelier/internal/views/pages"
	"atelier/internal/views/theme"
)

const clientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// Home renders the identity showcase in the visitor's colour mode.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		applog.Debug(r.Context(), "home request with unsupported method", "method", r.Method)
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	current := theme.Resolve(h.themeKey(r))
	applog.Debug(r.Context(), "rendering showcase", "theme", current.Key)

	w.Header().Set("Accept-CH", clientHintHeader)
	w.Header().Add("Vary", clientHintHeader)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page := layout.Page{
		Title:       "Atelier de Travail · Identity system",
		Description: "Design tokens and components for warm, scholarly product experiences.",
		Theme:       current,
	}
	started := time.Now()
	err := layout.Layout(page, pages.Home(pages.HomeData{
		Theme:  current,
		APIURL: h.publicAPIURL,
		Tokens: h.tokens,
	})).Render(r.Context(), w)
	metrics.RecordRender("home", time.Since(started), err)
	if err != nil {
		applog.Error(r.Context(), "failed to render showcase", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}
