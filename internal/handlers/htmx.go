package handlers

import "net/http"

// isHTMX reports whether r was issued by htmx, either directly or through a
// boosted link or form.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// redirectAfterPost ends a form submission. Plain browsers follow a 303 to
// target; htmx callers get an empty 204 and reload the current page.
func redirectAfterPost(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
