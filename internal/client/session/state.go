package session

import "campuscli/internal/client/models"

// Phase is the session's place in its lifecycle. Guards branch on the
// phase rather than on ad hoc nil/bool checks, so their rule order is
// explicit and exhaustive.
type Phase int

const (
	// PhaseResolving: the startup resolution (or a credential exchange)
	// is in flight; no routing decision can be made yet.
	PhaseResolving Phase = iota
	// PhaseAnonymous: no authenticated user.
	PhaseAnonymous
	// PhaseAuthenticatedNoRole: logged in, role not chosen yet.
	PhaseAuthenticatedNoRole
	// PhaseAuthenticatedWithRole: logged in with an assigned role.
	PhaseAuthenticatedWithRole
)

func (p Phase) String() string {
	switch p {
	case PhaseResolving:
		return "resolving"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticatedNoRole:
		return "authenticated-no-role"
	case PhaseAuthenticatedWithRole:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session. Exactly one live value
// exists behind the Container; everything else sees copies.
type State struct {
	Phase   Phase
	User    *models.User
	Loading bool
}

// stateFor derives the phase from the raw (loading, user) pair.
func stateFor(loading bool, user *models.User) State {
	s := State{User: user, Loading: loading}
	switch {
	case loading:
		s.Phase = PhaseResolving
	case user == nil:
		s.Phase = PhaseAnonymous
	case !user.HasRole():
		s.Phase = PhaseAuthenticatedNoRole
	default:
		s.Phase = PhaseAuthenticatedWithRole
	}
	return s
}
