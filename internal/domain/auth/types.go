package auth

// Package auth contains domain-level types for identities and sessions.
// It is pure and free of framework/adapter concerns.

import "strings"

// SubscriptionStatusActive is the only billing status that unlocks premium features.
const SubscriptionStatusActive = "active"

// Plan labels shown on the profile and plan pages.
const (
	PlanPremium = "premium"
	PlanFree    = "free"
)

// Subscription is the billing subscription attached to a user by the backend.
type Subscription struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// IsActive reports whether the subscription currently grants premium access.
// A nil subscription is inactive.
func (s *Subscription) IsActive() bool {
	return s != nil && strings.EqualFold(strings.TrimSpace(s.Status), SubscriptionStatusActive)
}

// User is the identity the backend resolves a session credential to.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Address      string        `json:"address,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// HasActiveSubscription reports whether the user is on the premium plan.
func (u User) HasActiveSubscription() bool { return u.Subscription.IsActive() }

// PlanLabel returns the plan name displayed to the user.
func (u User) PlanLabel() string {
	if u.HasActiveSubscription() {
		return PlanPremium
	}
	return PlanFree
}

// SignInRequest carries login form input.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest carries registration form input.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful sign-in: the opaque credential issued by the
// backend and the user it belongs to. The credential is never inspected locally.
type Session struct {
	Token string `json:"-"`
	User  User   `json:"user"`
}
