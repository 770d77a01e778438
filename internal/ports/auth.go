package ports

// Package ports defines interfaces (hexagonal ports) for the barbershop backend API.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
)

// CredentialValidator checks a session credential against the backend identity endpoint.
// A nil error means the credential is valid; any error means it is not.
type CredentialValidator interface {
	ValidateCredential(ctx context.Context, credential string) error
}

// SessionAPI signs users in and up and resolves the current user.
type SessionAPI interface {
	// SignIn exchanges email and password for a session credential.
	SignIn(ctx context.Context, req domainauth.SignInRequest) (domainauth.Session, error)

	// SignUp registers a new account. It does not sign the user in.
	SignUp(ctx context.Context, req domainauth.SignUpRequest) error

	// Me returns the user owning credential, including the subscription.
	Me(ctx context.Context, credential string) (domainauth.User, error)
}
