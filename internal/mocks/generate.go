// Package mocks provides gomock implementations of the backend ports for service and handler tests.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	schedules := mocks.NewMockScheduleAPI(ctrl)
//	schedules.EXPECT().ListSchedules(gomock.Any(), "tok").Return(list, nil)
package mocks

// Identity and session ports: ValidateCredential, SignIn, SignUp, Me.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_mock.go github.com/barberpro/dashboard/internal/ports CredentialValidator,SessionAPI

// Dashboard ports: haircuts, schedules, profile and billing.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=dashboard_mock.go github.com/barberpro/dashboard/internal/ports HaircutAPI,ScheduleAPI,ProfileAPI,SubscriptionAPI
