package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialContext(t *testing.T) {
	ctx := context.Background()

	_, ok := CredentialFromContext(ctx)
	assert.False(t, ok)

	assert.Equal(t, ctx, SetCredentialInContext(ctx, ""), "empty credential must not be attached")

	got, ok := CredentialFromContext(SetCredentialInContext(ctx, "good-token"))
	assert.True(t, ok)
	assert.Equal(t, "good-token", got)
}
