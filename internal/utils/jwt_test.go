package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	session := Session{
		UserID:   uuid.New(),
		Email:    "admin@example.com",
		Username: "admin",
		Role:     "ADMIN",
	}

	token, err := GenerateSessionToken(testSecret, session, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, session, parsed)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, Session{UserID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, Session{UserID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(testSecret, "not-a-token")
	assert.Error(t, err)
}
