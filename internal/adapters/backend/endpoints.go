package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/domain/model"
	apperrors "github.com/barberpro/dashboard/internal/errors"
)

// ValidateCredential asks the identity endpoint whether credential is accepted.
// Only the status code matters; any 2xx is valid.
func (c *Client) ValidateCredential(ctx context.Context, credential string) error {
	if credential == "" {
		return apperrors.Unauthorized("missing credential")
	}
	return c.do(ctx, call{endpoint: "validate", method: http.MethodGet, path: "/me", credential: credential})
}

// SignIn exchanges email and password for a session credential.
func (c *Client) SignIn(ctx context.Context, req domainauth.SignInRequest) (domainauth.Session, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{
		endpoint: "session",
		method:   http.MethodPost,
		path:     "/session",
		body:     req,
		out:      &raw,
	}); err != nil {
		return domainauth.Session{}, err
	}

	user, token, err := c.decodeUser(raw)
	if err != nil {
		return domainauth.Session{}, err
	}
	if token == "" {
		return domainauth.Session{}, apperrors.New(apperrors.ErrCodeUpstream, "backend session response has no token")
	}
	return domainauth.Session{Token: token, User: user}, nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, req domainauth.SignUpRequest) error {
	return c.do(ctx, call{endpoint: "users.create", method: http.MethodPost, path: "/users", body: req})
}

// Me returns the user owning credential.
func (c *Client) Me(ctx context.Context, credential string) (domainauth.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{endpoint: "me", method: http.MethodGet, path: "/me", credential: credential, out: &raw}); err != nil {
		return domainauth.User{}, err
	}
	user, _, err := c.decodeUser(raw)
	return user, err
}

// UpdateProfile changes the shop name and address.
func (c *Client) UpdateProfile(
	ctx context.Context,
	credential string,
	req model.UpdateProfileRequest,
) (domainauth.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{
		endpoint:   "users.update",
		method:     http.MethodPut,
		path:       "/users",
		credential: credential,
		body:       req,
		out:        &raw,
	}); err != nil {
		return domainauth.User{}, err
	}
	if len(raw) == 0 {
		return domainauth.User{Name: req.Name, Address: req.Address}, nil
	}
	user, _, err := c.decodeUser(raw)
	return user, err
}

// ListHaircuts lists haircuts filtered by status.
func (c *Client) ListHaircuts(
	ctx context.Context,
	credential string,
	opts model.HaircutsListOptions,
) ([]model.Haircut, error) {
	var out []model.Haircut
	err := c.do(ctx, call{
		endpoint:   "haircuts.list",
		method:     http.MethodGet,
		path:       "/haircuts",
		query:      url.Values{"status": {strconv.FormatBool(opts.Status)}},
		credential: credential,
		out:        &out,
	})
	if out == nil {
		out = []model.Haircut{}
	}
	return out, err
}

// CreateHaircut registers a haircut.
func (c *Client) CreateHaircut(
	ctx context.Context,
	credential string,
	req model.CreateHaircutRequest,
) (model.Haircut, error) {
	var out model.Haircut
	err := c.do(ctx, call{
		endpoint:   "haircut.create",
		method:     http.MethodPost,
		path:       "/haircut",
		credential: credential,
		body:       req,
		out:        &out,
	})
	return out, err
}

// UpdateHaircut edits a haircut.
func (c *Client) UpdateHaircut(
	ctx context.Context,
	credential string,
	req model.UpdateHaircutRequest,
) (model.Haircut, error) {
	var out model.Haircut
	err := c.do(ctx, call{
		endpoint:   "haircut.update",
		method:     http.MethodPut,
		path:       "/haircut",
		credential: credential,
		body:       req,
		out:        &out,
	})
	return out, err
}

// GetHaircut returns the haircut with the given id.
func (c *Client) GetHaircut(ctx context.Context, credential, id string) (model.Haircut, error) {
	var out *model.Haircut
	if err := c.do(ctx, call{
		endpoint:   "haircut.detail",
		method:     http.MethodGet,
		path:       "/haircut/detail",
		query:      url.Values{"haircut_id": {id}},
		credential: credential,
		out:        &out,
	}); err != nil {
		return model.Haircut{}, err
	}
	if out == nil {
		return model.Haircut{}, apperrors.NotFoundf("haircut %s not found", id)
	}
	return *out, nil
}

// CheckPlan returns the subscription of the signed-in user, nil when there is none.
func (c *Client) CheckPlan(ctx context.Context, credential string) (*domainauth.Subscription, error) {
	var raw json.RawMessage
	if err := c.do(ctx, call{
		endpoint:   "haircut.check",
		method:     http.MethodGet,
		path:       "/haircut/check",
		credential: credential,
		out:        &raw,
	}); err != nil {
		return nil, err
	}
	user, _, err := c.decodeUser(raw)
	if err != nil {
		return nil, err
	}
	return user.Subscription, nil
}

// CountHaircuts returns how many haircuts the user has registered.
func (c *Client) CountHaircuts(ctx context.Context, credential string) (int, error) {
	var out float64
	if err := c.do(ctx, call{
		endpoint:   "haircut.count",
		method:     http.MethodGet,
		path:       "/haircut/count",
		credential: credential,
		out:        &out,
	}); err != nil {
		return 0, err
	}
	return int(out), nil
}

// ListSchedules lists open appointments.
func (c *Client) ListSchedules(ctx context.Context, credential string) ([]model.Schedule, error) {
	var out []model.Schedule
	err := c.do(ctx, call{
		endpoint:   "schedule.list",
		method:     http.MethodGet,
		path:       "/schedule",
		credential: credential,
		out:        &out,
	})
	if out == nil {
		out = []model.Schedule{}
	}
	return out, err
}

// CreateSchedule opens an appointment.
func (c *Client) CreateSchedule(
	ctx context.Context,
	credential string,
	req model.CreateScheduleRequest,
) (model.Schedule, error) {
	var out model.Schedule
	err := c.do(ctx, call{
		endpoint:   "schedule.create",
		method:     http.MethodPost,
		path:       "/schedule",
		credential: credential,
		body:       req,
		out:        &out,
	})
	return out, err
}

// FinishSchedule closes an appointment.
func (c *Client) FinishSchedule(ctx context.Context, credential, id string) error {
	return c.do(ctx, call{
		endpoint:   "schedule.finish",
		method:     http.MethodDelete,
		path:       "/schedule",
		query:      url.Values{"schedule_id": {id}},
		credential: credential,
	})
}

// CreateCheckout starts a subscription checkout with the billing provider.
func (c *Client) CreateCheckout(ctx context.Context, credential string) (model.CheckoutSession, error) {
	var out model.CheckoutSession
	if err := c.do(ctx, call{
		endpoint:   "subscription",
		method:     http.MethodPost,
		path:       "/subscription",
		credential: credential,
		out:        &out,
	}); err != nil {
		return model.CheckoutSession{}, err
	}
	if out.SessionID == "" {
		return model.CheckoutSession{}, apperrors.New(apperrors.ErrCodeUpstream, "backend returned no checkout session")
	}
	return out, nil
}

// CreatePortal opens a billing portal session.
func (c *Client) CreatePortal(ctx context.Context, credential string) (model.PortalSession, error) {
	var out model.PortalSession
	if err := c.do(ctx, call{
		endpoint:   "portal",
		method:     http.MethodPost,
		path:       "/portal",
		credential: credential,
		out:        &out,
	}); err != nil {
		return model.PortalSession{}, err
	}
	u, err := url.Parse(out.URL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return model.PortalSession{}, apperrors.New(apperrors.ErrCodeUpstream, "backend returned an invalid portal url")
	}
	return out, nil
}
