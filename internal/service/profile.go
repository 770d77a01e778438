package service

import (
	"context"
	"strings"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/ports"
)

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Sessions ports.SessionAPI // Required
	Profiles ports.ProfileAPI // Required
}

// ProfileService reads and edits the shop profile.
type ProfileService struct {
	sessions ports.SessionAPI
	profiles ports.ProfileAPI
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	if opts.Sessions == nil || opts.Profiles == nil {
		panic("SessionAPI and ProfileAPI are required")
	}
	return &ProfileService{sessions: opts.Sessions, profiles: opts.Profiles}
}

// Get returns the signed-in user.
func (s *ProfileService) Get(ctx context.Context, credential string) (domainauth.User, error) {
	user, err := s.sessions.Me(ctx, credential)
	if err != nil {
		return domainauth.User{}, wrap("get profile", err)
	}
	return user, nil
}

// Update changes the shop name and address.
func (s *ProfileService) Update(
	ctx context.Context,
	credential string,
	req model.UpdateProfileRequest,
) (domainauth.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)

	user, err := s.profiles.UpdateProfile(ctx, credential, req)
	if err != nil {
		return domainauth.User{}, wrap("update profile", err)
	}
	return user, nil
}
