package handlers

import (
	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"atelier/internal/ui/tokens"
)

// Deps are the shared dependencies of the HTTP handlers. Sessions and Database
// are optional: without a session manager the theme falls back to the client
// hint, and without a database the health check reports it as disabled.
type Deps struct {
	Sessions     *scs.SessionManager
	Database     *gorm.DB
	Tokens       *tokens.Registry
	PublicAPIURL string
}

// Handlers serves the web application routes.
type Handlers struct {
	sessions     *scs.SessionManager
	database     *gorm.DB
	tokens       *tokens.Registry
	publicAPIURL string
}

// New builds the route handlers. A nil token registry selects the Atelier one.
func New(deps Deps) *Handlers {
	registry := deps.Tokens
	if registry == nil {
		registry = tokens.Atelier()
	}
	return &Handlers{
		sessions:     deps.Sessions,
		database:     deps.Database,
		tokens:       registry,
		publicAPIURL: deps.PublicAPIURL,
	}
}
