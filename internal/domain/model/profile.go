//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// UpdateProfileRequest is the backend payload for editing the shop profile.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CheckoutSession identifies a billing checkout started by the backend.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
}

// PortalSession carries the billing portal URL returned by the backend.
type PortalSession struct {
	URL string `json:"sessionId"`
}
