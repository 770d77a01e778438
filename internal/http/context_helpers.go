package httpx

import "context"

// credentialKey is an unexported context key type to avoid collisions across packages.
type credentialKey struct{}

// SetCredentialInContext returns a child context carrying a session credential the
// guard validated on this request. An empty credential leaves ctx unchanged.
func SetCredentialInContext(ctx context.Context, credential string) context.Context {
	if credential == "" {
		return ctx
	}
	return context.WithValue(ctx, credentialKey{}, credential)
}

// CredentialFromContext returns the validated credential and whether one is present.
func CredentialFromContext(ctx context.Context) (string, bool) {
	c, ok := ctx.Value(credentialKey{}).(string)
	return c, ok && c != ""
}
