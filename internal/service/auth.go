package service

import (
	"context"
	"log/slog"
	"strings"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions  ports.SessionAPI // Required
	Telemetry Telemetry
}

// AuthService signs users in and up against the backend. The backend issues the
// credential; this service never creates or inspects one.
type AuthService struct {
	sessions ports.SessionAPI
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions == nil {
		panic("SessionAPI is required")
	}
	return &AuthService{
		sessions: opts.Sessions,
		logger:   opts.Telemetry.logger("auth"),
	}
}

// SignIn exchanges credentials for a session.
func (s *AuthService) SignIn(ctx context.Context, req domainauth.SignInRequest) (domainauth.Session, error) {
	req.Email = normalizeEmail(req.Email)

	sess, err := s.sessions.SignIn(ctx, req)
	if err != nil {
		s.logger.InfoContext(ctx, "sign in rejected", "error_class", classify(err))
		return domainauth.Session{}, wrap("sign in", err)
	}
	s.logger.InfoContext(ctx, "user signed in", "user_id", sess.User.ID)
	return sess, nil
}

// SignUp registers a new account.
func (s *AuthService) SignUp(ctx context.Context, req domainauth.SignUpRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	if err := s.sessions.SignUp(ctx, req); err != nil {
		return wrap("sign up", err)
	}
	s.logger.InfoContext(ctx, "user signed up")
	return nil
}

// CurrentUser resolves the user owning credential.
func (s *AuthService) CurrentUser(ctx context.Context, credential string) (domainauth.User, error) {
	user, err := s.sessions.Me(ctx, credential)
	if err != nil {
		return domainauth.User{}, wrap("current user", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
