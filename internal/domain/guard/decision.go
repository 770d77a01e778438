// Package guard holds the pure decision rules of the session guard.
package guard

import "github.com/barberpro/dashboard/internal/domain/route"

// Action is what the guard does with an intercepted request.
type Action string

const (
	// Allow passes the request through to the next handler.
	Allow Action = "allow"
	// Redirect answers with a temporary redirect to Decision.Location.
	Redirect Action = "redirect"
)

// Decision is the outcome of evaluating one request.
type Decision struct {
	Action   Action
	Location string
	// ClearCredential instructs the caller to delete the session cookie.
	ClearCredential bool
}

// Credential describes the session credential state known for a request.
type Credential struct {
	Present bool
	// Valid is only meaningful when Present is true and the class requires validation.
	Valid bool
}

// NeedsValidation reports whether a credential must be checked against the backend
// before a decision can be taken. Unclassified paths and absent credentials never are.
func NeedsValidation(class route.Class, present bool) bool {
	if !present {
		return false
	}
	return class == route.AuthPage || class == route.Protected
}

// Decide maps a route class and credential state to a decision.
func Decide(class route.Class, cred Credential) Decision {
	switch class {
	case route.AuthPage:
		switch {
		case !cred.Present:
			return Decision{Action: Allow}
		case cred.Valid:
			return Decision{Action: Redirect, Location: route.DashboardPath}
		default:
			return Decision{Action: Allow, ClearCredential: true}
		}
	case route.Protected:
		switch {
		case !cred.Present:
			return Decision{Action: Redirect, Location: route.AuthPath}
		case cred.Valid:
			return Decision{Action: Allow}
		default:
			return Decision{Action: Redirect, Location: route.AuthPath, ClearCredential: true}
		}
	default:
		return Decision{Action: Allow}
	}
}
