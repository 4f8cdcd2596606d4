package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/config"
	"github.com/example/corpweb/internal/middleware"
	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
	"github.com/example/corpweb/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	google *services.GoogleService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, google *services.GoogleService) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, google: google}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	if user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	return h.issueSession(c, user)
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

// GoogleLogin accepts a Google ID-token assertion. Only users that
// already exist may sign in this way; there is no self-service signup.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.IDToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "id_token is required")
	}

	identity, err := h.google.VerifyIDToken(req.IDToken)
	if err != nil {
		// A missing client ID is a server problem, not a bad credential.
		if errors.Is(err, services.ErrGoogleNotConfigured) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "google sign-in is not available")
		}
		return fiber.NewError(fiber.StatusUnauthorized, "invalid google token")
	}

	var user models.User
	if err := h.db.Where("email = ?", identity.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusForbidden, "account not registered")
		}
		return err
	}

	// Refresh profile fields from the provider's claims.
	if identity.Name != "" {
		user.Username = identity.Name
	}
	if identity.Picture != "" {
		user.Avatar = identity.Picture
	}
	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	return h.issueSession(c, user)
}

// Refresh re-reads the user's role from the database and reissues the
// session cookie, so role changes take effect without a new login.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", session.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
		}
		return err
	}

	return h.issueSession(c, user)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", session.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (h *AuthHandler) issueSession(c *fiber.Ctx, user models.User) error {
	token, err := utils.GenerateSessionToken(h.cfg.SessionSecret, utils.Session{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}, h.cfg.SessionTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate session token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
		"token":   token,
	})
}
