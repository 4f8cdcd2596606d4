package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corpweb/internal/services"
)

func TestGoogleLoginUnconfiguredReturnsServiceUnavailable(t *testing.T) {
	h := NewAuthHandler(setupMockDB(t), testConfig(t), services.NewGoogleService(""))

	app := newTestApp()
	app.Post("/api/auth/google", h.GoogleLogin)

	req := httptest.NewRequest("POST", "/api/auth/google", jsonBody(`{"id_token":"some-token"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestGoogleLoginRequiresIDToken(t *testing.T) {
	h := NewAuthHandler(setupMockDB(t), testConfig(t), services.NewGoogleService("client-id"))

	app := newTestApp()
	app.Post("/api/auth/google", h.GoogleLogin)

	req := httptest.NewRequest("POST", "/api/auth/google", jsonBody(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
