// Package httpx provides the HTTP surface of the barber dashboard: the session guard
// middleware, the auth endpoints and the dashboard JSON handlers.
package httpx

import (
	"log/slog"
	"net/http"

	apperrors "github.com/barberpro/dashboard/internal/errors"
	obserrors "github.com/barberpro/dashboard/internal/observability/errors"
)

var errCredentialRequired = apperrors.Unauthorized("authentication required")

// handlerBase carries what every dashboard handler needs to talk to the cookie store.
type handlerBase struct {
	Cookies CookieConfig
	Logger  *slog.Logger
}

func (h handlerBase) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// credential returns the credential the guard validated for this request.
// Without one it answers 401 and reports false.
func (h handlerBase) credential(w http.ResponseWriter, r *http.Request) (string, bool) {
	c, ok := CredentialFromContext(r.Context())
	if !ok {
		WriteAppError(w, errCredentialRequired)
		return "", false
	}
	return c, true
}

// fail writes err for the client. A credential the backend rejected mid-request is
// purged so the next navigation lands on the login page.
func (h handlerBase) fail(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.IsUnauthorized(err) {
		h.Cookies.Purge(w, r)
	}

	status := StatusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger().ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"error", err,
			"error_class", obserrors.Classify(err),
		)
	}
	WriteAppError(w, err)
}

// redirectBody is returned to AJAX clients in place of a navigation.
type redirectBody struct {
	RedirectTo string `json:"redirect_to"`
}

// navigate sends the client to location: JSON for AJAX, 303 otherwise.
func navigate(w http.ResponseWriter, r *http.Request, location string) {
	if isAJAX(r) {
		WriteJSON(w, http.StatusOK, redirectBody{RedirectTo: location})
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
