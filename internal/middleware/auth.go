package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/corpweb/internal/authz"
	"github.com/example/corpweb/internal/config"
	"github.com/example/corpweb/internal/utils"
)

const sessionContextKey = "currentSession"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "corpweb_session"

// AdminPathPrefix matches every back-office route.
const AdminPathPrefix = "/api/admin"

// DashboardPath is where restricted roles are sent when they request an
// admin screen outside their allowlist.
const DashboardPath = "/admin/dashboard"

// AdminGate validates the session cookie on admin-prefixed routes and
// checks the caller's role against the authorization policy. Requests
// without a valid session are redirected to the public root; sessions
// whose role lacks the capability for the requested path are redirected
// to the dashboard.
func AdminGate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return c.Redirect("/", fiber.StatusFound)
		}

		session, err := utils.ParseSessionToken(cfg.SessionSecret, token)
		if err != nil || !authz.Known(session.Role) {
			return c.Redirect("/", fiber.StatusFound)
		}

		required := authz.CapabilityForPath(c.Path(), AdminPathPrefix)
		if !authz.Allowed(session.Role, required) {
			return c.Redirect(DashboardPath, fiber.StatusFound)
		}

		c.Locals(sessionContextKey, session)
		return c.Next()
	}
}

// RequireSession validates the session cookie without any path-based
// capability check. Used on endpoints that only need the caller's
// identity, such as /auth/me and /auth/refresh.
func RequireSession(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookieName)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing session")
		}

		session, err := utils.ParseSessionToken(cfg.SessionSecret, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid session")
		}

		c.Locals(sessionContextKey, session)
		return c.Next()
	}
}

// GetSession extracts the authenticated session from context.
func GetSession(c *fiber.Ctx) (utils.Session, bool) {
	value := c.Locals(sessionContextKey)
	if value == nil {
		return utils.Session{}, false
	}

	if session, ok := value.(utils.Session); ok {
		return session, true
	}

	return utils.Session{}, false
}
