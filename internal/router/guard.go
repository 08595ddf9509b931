package router

import "github.com/MKhiriev/career-dashboard/internal/logger"

// Authenticator reports whether the current session may enter protected
// routes. Implementations must answer synchronously without I/O.
type Authenticator interface {
	IsAuthenticated() bool
}

// Redirect is called with the route the user is sent to when the guard
// refuses entry.
type Redirect func(path string)

type Guard struct {
	auth     Authenticator
	redirect Redirect
	logger   *logger.Logger
}

func NewGuard(auth Authenticator, redirect Redirect, logger *logger.Logger) *Guard {
	return &Guard{auth: auth, redirect: redirect, logger: logger}
}

// CanEnter reports whether a protected route may be activated. On refusal
// the redirect callback receives the login route.
func (g *Guard) CanEnter() bool {
	if g.auth.IsAuthenticated() {
		return true
	}

	g.logger.Debug().Str("func", "Guard.CanEnter").Str("redirect", Login).Msg("entry refused, not authenticated")
	if g.redirect != nil {
		g.redirect(Login)
	}
	return false
}

// Enter resolves path and returns the route that is actually shown:
// public routes pass through, protected ones only when CanEnter allows.
func (g *Guard) Enter(path string) string {
	route := Resolve(path)
	if IsPublic(route) {
		return route
	}
	if !g.CanEnter() {
		return Login
	}
	return route
}
