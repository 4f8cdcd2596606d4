package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/config"
	"github.com/example/corpweb/internal/middleware"
	"github.com/example/corpweb/internal/utils"
)

// setupMockDB builds a gorm connection over sqlmock for handler paths
// that must fail before reaching the database.
func setupMockDB(t *testing.T) *gorm.DB {
	gormDB, _ := setupMockDBConn(t)
	return gormDB
}

// setupMockDBConn additionally exposes the sqlmock handle for tests that
// pin the statements a handler issues.
func setupMockDBConn(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		SessionSecret:    "test-secret",
		SessionTTL:       time.Hour,
		UploadDir:        t.TempDir(),
		PublicUploadPath: "/uploads",
		MaxUploadBytes:   5 * 1024 * 1024,
	}
}

func sessionCookie(t *testing.T, cfg *config.Config, userID uuid.UUID, role string) *http.Cookie {
	t.Helper()

	token, err := utils.GenerateSessionToken(cfg.SessionSecret, utils.Session{
		UserID:   userID,
		Email:    "tester@example.com",
		Username: "tester",
		Role:     role,
	}, cfg.SessionTTL)
	require.NoError(t, err)

	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func jsonBody(body string) io.Reader {
	return strings.NewReader(body)
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
		},
	})
}
