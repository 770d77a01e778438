package ports

import (
	"context"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/domain/model"
)

// HaircutAPI manages the haircut catalogue of the signed-in shop.
type HaircutAPI interface {
	ListHaircuts(ctx context.Context, credential string, opts model.HaircutsListOptions) ([]model.Haircut, error)
	CreateHaircut(ctx context.Context, credential string, req model.CreateHaircutRequest) (model.Haircut, error)
	UpdateHaircut(ctx context.Context, credential string, req model.UpdateHaircutRequest) (model.Haircut, error)
	GetHaircut(ctx context.Context, credential, id string) (model.Haircut, error)

	// CheckPlan returns the subscription of the signed-in user, nil when there is none.
	CheckPlan(ctx context.Context, credential string) (*domainauth.Subscription, error)
	CountHaircuts(ctx context.Context, credential string) (int, error)
}

// ScheduleAPI manages open appointments.
type ScheduleAPI interface {
	ListSchedules(ctx context.Context, credential string) ([]model.Schedule, error)
	CreateSchedule(ctx context.Context, credential string, req model.CreateScheduleRequest) (model.Schedule, error)
	FinishSchedule(ctx context.Context, credential, id string) error
}

// ProfileAPI updates the shop profile.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, credential string, req model.UpdateProfileRequest) (domainauth.User, error)
}

// SubscriptionAPI starts billing flows handled by the payment provider.
type SubscriptionAPI interface {
	CreateCheckout(ctx context.Context, credential string) (model.CheckoutSession, error)
	CreatePortal(ctx context.Context, credential string) (model.PortalSession, error)
}

// BackendAPI is the full backend surface implemented by the HTTP adapter.
type BackendAPI interface {
	CredentialValidator
	SessionAPI
	HaircutAPI
	ScheduleAPI
	ProfileAPI
	SubscriptionAPI
}
