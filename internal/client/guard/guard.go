// Package guard decides whether a session may enter a route. Decisions
// are pure functions of the session snapshot, so they are trivially
// testable and cannot race with session mutations.
package guard

import (
	"campuscli/internal/client/models"
	"campuscli/internal/client/session"
)

// Route names a navigable view.
type Route string

const (
	RouteLogin      Route = "login"
	RouteRoleSelect Route = "role-selection"
	RouteHome       Route = "dashboard"
)

// Decision is the guard verdict for a route request.
type Decision int

const (
	// Defer: resolution still in flight, render nothing and wait.
	Defer Decision = iota
	// Allow: the route may render.
	Allow
	// RedirectLogin: no authenticated user.
	RedirectLogin
	// RedirectRoleSelect: authenticated but no role chosen yet.
	RedirectRoleSelect
	// RedirectHome: role not in the route's allow-list.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Defer:
		return "defer"
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectRoleSelect:
		return "redirect-role-selection"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decide applies the gate rules in their significant order: the loading
// window defers everything (otherwise rule 2 would fire spuriously during
// resolution), missing user beats missing role, and role presence is
// checked before role membership. An empty allow list admits any role.
func Decide(s session.State, route Route, allow []models.Role) Decision {
	if s.Loading {
		return Defer
	}
	if s.User == nil {
		return RedirectLogin
	}
	if !s.User.HasRole() {
		if route == RouteRoleSelect {
			return Allow
		}
		return RedirectRoleSelect
	}
	if len(allow) > 0 && !s.User.Role.In(allow) {
		return RedirectHome
	}
	return Allow
}
