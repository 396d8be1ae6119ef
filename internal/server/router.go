package server

import (
	"context"
	"net/http"

	"atelier/internal/handlers"
	applog "atelier/internal/log"
	"atelier/internal/metrics"
)

type route struct {
	pattern string
	handler http.Handler
}

func newRouter(h *handlers.Handlers, metricsEnabled bool) http.Handler {
	routes := []route{
		{"/healthz", http.HandlerFunc(h.Health)},
		{"/api/tokens", http.HandlerFunc(h.Tokens)},
		{"/preferences/theme", http.HandlerFunc(h.UpdatePreferences)},
	}
	if metricsEnabled {
		routes = append(routes, route{"/metrics", metrics.Handler()})
	}
	// catch-all; Home answers 404 for anything but "/"
	routes = append(routes, route{"/", http.HandlerFunc(h.Home)})

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.pattern, r.handler)
		applog.Debug(context.Background(), "route registered", "path", r.pattern)
	}
	return mux
}
