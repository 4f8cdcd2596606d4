package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSettingsRequiresCompanyName(t *testing.T) {
	h := NewSiteHandler(setupMockDB(t), nil)

	app := newTestApp()
	app.Put("/api/admin/site-settings", h.UpsertSettings)

	body := `{"tagline":"we build things","description":"a company"}`
	req := httptest.NewRequest("PUT", "/api/admin/site-settings", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpsertSettingsRejectsBlankCompanyName(t *testing.T) {
	h := NewSiteHandler(setupMockDB(t), nil)

	app := newTestApp()
	app.Put("/api/admin/site-settings", h.UpsertSettings)

	body := `{"nama_company":"   "}`
	req := httptest.NewRequest("PUT", "/api/admin/site-settings", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
