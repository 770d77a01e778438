package service

import (
	"fmt"

	apperrors "github.com/barberpro/dashboard/internal/errors"
	obserrors "github.com/barberpro/dashboard/internal/observability/errors"
)

// Plan rule violations returned by the dashboard services.
var (
	ErrPlanLimitReached = apperrors.New(apperrors.ErrCodePlanLimitReached,
		"the free plan allows a limited number of haircuts; upgrade to premium to add more")
	ErrPremiumRequired = apperrors.New(apperrors.ErrCodePremiumRequired,
		"editing haircuts requires an active premium subscription")
	ErrSubscriptionActive = apperrors.New(apperrors.ErrCodeSubscriptionActive,
		"the subscription is already active")
	ErrSubscriptionInactive = apperrors.New(apperrors.ErrCodeSubscriptionInactive,
		"there is no active subscription to manage")
)

func classify(err error) string { return obserrors.Classify(err) }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
