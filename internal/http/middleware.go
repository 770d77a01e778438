package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/barberpro/dashboard/internal/domain/guard"
	"github.com/barberpro/dashboard/internal/domain/route"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GuardEvaluator decides what happens to a guarded navigation.
type GuardEvaluator interface {
	Evaluate(ctx context.Context, path, credential string) guard.Decision
}

// SessionGuard returns a middleware that applies the session guard to /auth and
// the /dashboard tree. Other requests pass straight through. A protected page
// reached with a credential that was just validated gets it attached to the
// request context.
func SessionGuard(g GuardEvaluator, cookies CookieConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if !route.InScope(path) {
				next.ServeHTTP(w, r)
				return
			}

			credential := cookies.Read(r)
			decision := g.Evaluate(r.Context(), path, credential)
			if decision.ClearCredential {
				cookies.Purge(w, r)
			}

			if decision.Action == guard.Redirect {
				http.Redirect(w, r, decision.Location, redirectStatus(r.Method))
				return
			}

			if !decision.ClearCredential && route.Classify(path) == route.Protected {
				r = r.WithContext(SetCredentialInContext(r.Context(), credential))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirectStatus keeps GET and HEAD on 307. Other methods get 303 so the
// browser lands on the target page with a GET instead of replaying the body.
func redirectStatus(method string) int {
	if method == http.MethodGet || method == http.MethodHead {
		return http.StatusTemporaryRedirect
	}
	return http.StatusSeeOther
}
