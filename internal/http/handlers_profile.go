package httpx

import (
	"net/http"
	"strings"

	"github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/http/validation"
	"github.com/barberpro/dashboard/internal/service"
)

const (
	minAddressLen = 2

	actionSubscribe = "subscribe"
	actionManage    = "manage"
)

// ProfileHandlers serves the profile and change-plan pages.
type ProfileHandlers struct {
	handlerBase
	Profile       *service.ProfileService
	Subscriptions *service.SubscriptionService
}

type profileResponse struct {
	User auth.User `json:"user"`
	Plan string    `json:"plan"`
}

// Get returns the signed-in user and plan.
// GET /dashboard/profile and GET /dashboard/profile/change-plan.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	user, err := h.Profile.Get(r.Context(), cred)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, profileResponse{User: user, Plan: user.PlanLabel()})
}

// Update edits name and address. PUT /dashboard/profile.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	var req model.UpdateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	fv := validation.New().
		Validate("name", req.Name, validation.MinLen("Name", minNameLen)).
		Validate("address", req.Address, validation.MinLen("Address", minAddressLen))
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	user, err := h.Profile.Update(r.Context(), cred, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, profileResponse{User: user, Plan: user.PlanLabel()})
}

type checkoutResponse struct {
	CheckoutSessionID string `json:"checkout_session_id"`
}

// ChangePlan starts a checkout or opens the billing portal.
// POST /dashboard/profile/change-plan?action=subscribe|manage.
func (h *ProfileHandlers) ChangePlan(w http.ResponseWriter, r *http.Request) {
	cred, ok := h.credential(w, r)
	if !ok {
		return
	}

	action := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("action")))
	if action == "" {
		action = actionSubscribe
	}
	fv := validation.New().
		Validate("action", action, validation.OneOf("Action", []string{actionSubscribe, actionManage}))
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	if action == actionManage {
		portal, err := h.Subscriptions.Manage(r.Context(), cred)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		navigate(w, r, portal.URL)
		return
	}

	checkout, err := h.Subscriptions.Subscribe(r.Context(), cred)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, checkoutResponse{CheckoutSessionID: checkout.SessionID})
}
