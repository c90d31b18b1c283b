package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("secret")

	token, err := issuer.Issue("sid-1", "user-1", time.Hour)
	assert.NoError(t, err)

	sid, err := issuer.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "sid-1", sid)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenIssuer("other").Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenIssuer("secret")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, err := past.Issue("sid-2", "user-1", time.Hour)
		assert.NoError(t, err)

		_, err = issuer.Parse(old)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
