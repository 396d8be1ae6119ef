package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"atelier/internal/handlers"
	applog "atelier/internal/log"
	"atelier/internal/metrics"
)

const (
	defaultSessionLifetime = 12 * time.Hour
	defaultCookieName      = "atelier_session"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr     string
	Session  SessionConfig
	Database *gorm.DB
	// MetricsEnabled exposes /metrics and instruments every request.
	MetricsEnabled bool
	PublicAPIURL   string
}

// SessionConfig controls the cookie that carries the theme preference.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.Lifetime <= 0 {
		c.Lifetime = defaultSessionLifetime
	}
	if strings.TrimSpace(c.CookieName) == "" {
		c.CookieName = defaultCookieName
	}
	return c
}

func newSessionManager(c SessionConfig) *scs.SessionManager {
	sessions := scs.New()
	sessions.Lifetime = c.Lifetime
	sessions.Cookie.Name = c.CookieName
	sessions.Cookie.Domain = c.CookieDomain
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.Persist = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = c.CookieSecure
	return sessions
}

// Server owns the http.Server and the middleware chain in front of the
// routes: metrics (optional), then sessions, then the mux.
type Server struct {
	config     Config
	httpServer *http.Server
}

// New builds a Server from cfg. Zero session settings select a 12 hour
// lifetime and the atelier_session cookie.
func New(cfg Config) (*Server, error) {
	cfg.Session = cfg.Session.withDefaults()
	sessions := newSessionManager(cfg.Session)

	applog.Debug(context.Background(), "session manager configured",
		"lifetime", cfg.Session.Lifetime.String(),
		"cookieName", cfg.Session.CookieName,
		"cookieDomain", cfg.Session.CookieDomain,
		"cookieSecure", cfg.Session.CookieSecure,
	)

	h := handlers.New(handlers.Deps{
		Sessions:     sessions,
		Database:     cfg.Database,
		PublicAPIURL: cfg.PublicAPIURL,
	})

	handler := sessions.LoadAndSave(newRouter(h, cfg.MetricsEnabled))
	if cfg.MetricsEnabled {
		handler = metrics.InstrumentHandler(handler)
	}

	applog.Debug(context.Background(), "http handler chain prepared",
		"addr", cfg.Addr,
		"metrics", cfg.MetricsEnabled,
		"database", cfg.Database != nil,
	)

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Start serves HTTP until Stop is called. It returns http.ErrServerClosed
// after a graceful shutdown.
func (s *Server) Start() error {
	applog.Info(context.Background(), "server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests for up to five seconds.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
