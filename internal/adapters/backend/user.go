package backend

import (
	"encoding/json"
	"fmt"
	"log/slog"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/barberpro/dashboard/internal/domain/auth"
	apperrors "github.com/barberpro/dashboard/internal/errors"
)

// userPayload covers the user shapes returned by /session, /me, /users and /haircut/check.
// The backend names the subscription relation "subscriptions" on some endpoints and
// "subscription" on others.
type userPayload struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Address       *string                  `json:"address"`
	Token         string                   `json:"token"`
	Subscriptions *domainauth.Subscription `json:"subscriptions"`
	Subscription  *domainauth.Subscription `json:"subscription"`
}

// decodeUser maps a backend user payload to a domain user and returns the session
// token when the payload carries one.
func (c *Client) decodeUser(raw []byte) (domainauth.User, string, error) {
	var p userPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domainauth.User{}, "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode user payload")
	}

	user := domainauth.User{ID: p.ID, Name: p.Name, Email: p.Email}
	if p.Address != nil {
		user.Address = *p.Address
	}

	sub := p.Subscriptions
	if sub == nil {
		sub = p.Subscription
	}
	if status, ok := c.planStatus(raw); ok {
		if sub == nil {
			sub = &domainauth.Subscription{}
		}
		sub.Status = status
	}
	user.Subscription = sub
	return user, p.Token, nil
}

// planStatus evaluates the configured expression against the raw payload.
func (c *Client) planStatus(raw []byte) (string, bool) {
	if c.planExpr == "" {
		return "", false
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", false
	}
	v, err := jmespath.Search(c.planExpr, data)
	if err != nil {
		c.logger.Warn("plan status expression failed", slog.String("expr", c.planExpr), slog.Any("error", err))
		return "", false
	}
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, s != ""
	default:
		return fmt.Sprint(s), true
	}
}
