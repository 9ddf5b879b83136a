package auth_test

import (
	"testing"
	"time"

	"packtrack/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	t.Run("round_trip_returns_client_id", func(t *testing.T) {
		strategy := auth.NewHMACStrategy("test-secret", auth.Options{TTL: time.Hour})

		token, err := strategy.IssueToken(42)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		clientID, err := strategy.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), clientID)
	})

	t.Run("rejects_garbage_token", func(t *testing.T) {
		strategy := auth.NewHMACStrategy("test-secret", auth.Options{})

		_, err := strategy.ParseToken("not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects_token_signed_with_other_secret", func(t *testing.T) {
		issuer := auth.NewHMACStrategy("secret-a", auth.Options{TTL: time.Hour})
		verifier := auth.NewHMACStrategy("secret-b", auth.Options{TTL: time.Hour})

		token, err := issuer.IssueToken(7)
		require.NoError(t, err)

		_, err = verifier.ParseToken(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("rejects_expired_token", func(t *testing.T) {
		// Expiry has one-second resolution, so a nanosecond TTL produces a
		// token that is stale after the next full second.
		strategy := auth.NewHMACStrategy("test-secret", auth.Options{TTL: time.Nanosecond})

		token, err := strategy.IssueToken(7)
		require.NoError(t, err)

		time.Sleep(2 * time.Second)
		_, err = strategy.ParseToken(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestBcryptHasher(t *testing.T) {
	t.Run("hash_and_compare", func(t *testing.T) {
		hasher := auth.NewBcryptHasher(4)

		hash, err := hasher.Hash("hunter2")
		require.NoError(t, err)
		assert.NotEqual(t, "hunter2", hash)

		require.NoError(t, hasher.Compare(hash, "hunter2"))
		require.Error(t, hasher.Compare(hash, "wrong-password"))
	})
}
