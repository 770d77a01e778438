package httpx

import (
	"net/http"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
	"github.com/barberpro/dashboard/internal/domain/route"
	apperrors "github.com/barberpro/dashboard/internal/errors"
	"github.com/barberpro/dashboard/internal/http/validation"
	"github.com/barberpro/dashboard/internal/service"
)

const (
	authModeLogin    = "login"
	authModeRegister = "register"

	minPasswordLen = 6
	minNameLen     = 2
)

var errInvalidCredentials = apperrors.Unauthorized("invalid e-mail or password")

// AuthHandlers provides HTTP handlers for signing in, signing up and signing out.
type AuthHandlers struct {
	handlerBase
	Svc *service.AuthService
}

type authPage struct {
	Page string `json:"page"`
	Mode string `json:"mode"`
}

// Page describes the auth page. GET /auth?mode=register selects the registration form.
func (h *AuthHandlers) Page(w http.ResponseWriter, r *http.Request) {
	mode := authModeLogin
	if r.URL.Query().Get("mode") == authModeRegister {
		mode = authModeRegister
	}
	WriteJSON(w, http.StatusOK, authPage{Page: "auth", Mode: mode})
}

type signInResponse struct {
	User       domainauth.User `json:"user"`
	RedirectTo string          `json:"redirect_to"`
}

// SignIn exchanges e-mail and password for a session credential cookie.
// POST /auth/session.
func (h *AuthHandlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req domainauth.SignInRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	fv := validation.New().
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.Password("Password", minPasswordLen))
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	sess, err := h.Svc.SignIn(r.Context(), req)
	if err != nil {
		h.fail(w, r, signInError(err))
		return
	}

	h.Cookies.Set(w, r, sess.Token)
	WriteJSON(w, http.StatusOK, signInResponse{User: sess.User, RedirectTo: route.DashboardPath})
}

// signInError folds every backend rejection of the login form into one 401 so the
// response never reveals which of e-mail or password was wrong.
func signInError(err error) error {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeUnauthorized,
		apperrors.ErrCodeNotFound, apperrors.ErrCodeForbidden:
		return errInvalidCredentials
	default:
		return err
	}
}

// SignUp registers an account and sends the user back to the login form.
// POST /auth/users.
func (h *AuthHandlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req domainauth.SignUpRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	fv := validation.New().
		Validate("name", req.Name, validation.MinLen("Name", minNameLen)).
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.Password("Password", minPasswordLen))
	if !fv.Valid() {
		writeValidation(w, fv)
		return
	}

	if err := h.Svc.SignUp(r.Context(), req); err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, redirectBody{RedirectTo: route.AuthPath})
}

// SignOut purges the credential cookie.
// POST /auth/signout.
func (h *AuthHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Cookies.Purge(w, r)
	navigate(w, r, route.AuthPath)
}
