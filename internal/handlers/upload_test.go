package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corpweb/internal/config"
)

func multipartFile(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func uploadApp(cfg *config.Config) *fiber.App {
	app := newTestApp()
	h := NewUploadHandler(cfg)
	app.Post("/api/admin/upload", h.Upload)
	return app
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	cfg := testConfig(t)
	app := uploadApp(cfg)

	body, contentType := multipartFile(t, "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest("POST", "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not be written to disk")
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxUploadBytes = 16
	app := uploadApp(cfg)

	body, contentType := multipartFile(t, "big.png", "image/png", bytes.Repeat([]byte{0xff}, 64))
	req := httptest.NewRequest("POST", "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// serverApp mirrors the production fiber config: the body limit sits above
// the upload ceiling so the handler's own size check is the one that decides.
func serverApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})
	h := NewUploadHandler(cfg)
	app.Post("/api/admin/upload", h.Upload)
	return app
}

func TestUploadAcceptsFileLargerThanDefaultBodyLimit(t *testing.T) {
	cfg := testConfig(t)
	app := serverApp(cfg)

	// 4.5 MiB: over fiber's default 4 MiB body cap, under the 5 MiB ceiling.
	body, contentType := multipartFile(t, "hero.png", "image/png", bytes.Repeat([]byte{0xab}, 4608*1024))
	req := httptest.NewRequest("POST", "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestUploadOversizeFileGetsBadRequestNotEntityTooLarge(t *testing.T) {
	cfg := testConfig(t)
	app := serverApp(cfg)

	body, contentType := multipartFile(t, "huge.png", "image/png", bytes.Repeat([]byte{0xab}, 5*1024*1024+1))
	req := httptest.NewRequest("POST", "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadStoresFileAndReturnsPublicURL(t *testing.T) {
	cfg := testConfig(t)
	app := uploadApp(cfg)

	body, contentType := multipartFile(t, "logo.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest("POST", "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.True(t, strings.HasPrefix(payload.Data.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(payload.Data.URL, ".png"))

	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
