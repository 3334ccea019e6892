// Package guard gates navigation on session presence and role, mirroring
// the server's authorization without asking it.
package guard

import (
	"github.com/loungeshop/storefront/internal/models"
)

type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login view.
	RedirectLogin
	// RedirectHome sends an authenticated visitor without the required
	// role back to the default view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect:login"
	case RedirectHome:
		return "redirect:home"
	default:
		return "unknown"
	}
}

// Sessions is the slice of the session store the guard reads.
type Sessions interface {
	Authenticated() bool
	Current() *models.User
}

// Guard holds no state of its own; every Evaluate reads the session store
// fresh.
type Guard struct {
	Sessions Sessions
}

// Evaluate decides one navigation attempt. requiredRole may be empty, in
// which case any authenticated session passes.
func (g *Guard) Evaluate(requiredRole string) Decision {
	if !g.Sessions.Authenticated() {
		return RedirectLogin
	}
	if requiredRole == "" {
		return Allow
	}
	user := g.Sessions.Current()
	if user == nil || user.Role != requiredRole {
		return RedirectHome
	}
	return Allow
}
