package service

import (
	"context"
	"log/slog"

	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/ports"
)

// SubscriptionServiceOptions groups dependencies for SubscriptionService.
type SubscriptionServiceOptions struct {
	Sessions  ports.SessionAPI      // Required
	Billing   ports.SubscriptionAPI // Required
	Telemetry Telemetry
}

// SubscriptionService starts billing flows. Payment itself happens at the provider.
type SubscriptionService struct {
	sessions ports.SessionAPI
	billing  ports.SubscriptionAPI
	logger   *slog.Logger
}

// NewSubscriptionService constructs a new SubscriptionService.
func NewSubscriptionService(opts SubscriptionServiceOptions) *SubscriptionService {
	if opts.Sessions == nil || opts.Billing == nil {
		panic("SessionAPI and SubscriptionAPI are required")
	}
	return &SubscriptionService{
		sessions: opts.Sessions,
		billing:  opts.Billing,
		logger:   opts.Telemetry.logger("subscription"),
	}
}

// Subscribe starts a checkout for a user without an active subscription.
func (s *SubscriptionService) Subscribe(ctx context.Context, credential string) (model.CheckoutSession, error) {
	user, err := s.sessions.Me(ctx, credential)
	if err != nil {
		return model.CheckoutSession{}, wrap("subscribe", err)
	}
	if user.HasActiveSubscription() {
		return model.CheckoutSession{}, ErrSubscriptionActive
	}

	checkout, err := s.billing.CreateCheckout(ctx, credential)
	if err != nil {
		return model.CheckoutSession{}, wrap("create checkout", err)
	}
	s.logger.InfoContext(ctx, "checkout started", "user_id", user.ID)
	return checkout, nil
}

// Manage opens the billing portal for a user with an active subscription.
func (s *SubscriptionService) Manage(ctx context.Context, credential string) (model.PortalSession, error) {
	user, err := s.sessions.Me(ctx, credential)
	if err != nil {
		return model.PortalSession{}, wrap("manage subscription", err)
	}
	if !user.HasActiveSubscription() {
		return model.PortalSession{}, ErrSubscriptionInactive
	}

	portal, err := s.billing.CreatePortal(ctx, credential)
	if err != nil {
		return model.PortalSession{}, wrap("create portal", err)
	}
	return portal, nil
}
