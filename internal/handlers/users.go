package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/authz"
	"github.com/example/corpweb/internal/middleware"
	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
	"github.com/example/corpweb/internal/utils"
)

// UserHandler manages back-office accounts. Every operation re-checks the
// manage-users capability against the shared policy, independently of the
// path-based gate.
type UserHandler struct {
	db       *gorm.DB
	activity *services.ActivityRecorder
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(db *gorm.DB, activity *services.ActivityRecorder) *UserHandler {
	return &UserHandler{db: db, activity: activity}
}

func requireManageUsers(c *fiber.Ctx) (utils.Session, error) {
	session, ok := middleware.GetSession(c)
	if !ok {
		return utils.Session{}, fiber.NewError(fiber.StatusUnauthorized, "missing session")
	}
	if !authz.Allowed(session.Role, authz.CapManageUsers) {
		return utils.Session{}, fiber.NewError(fiber.StatusForbidden, "insufficient role")
	}
	return session, nil
}

// ListUsers returns paginated accounts.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	if _, err := requireManageUsers(c); err != nil {
		return err
	}

	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		q := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var users []models.User
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetUser returns a single account.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	if _, err := requireManageUsers(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	IsGoogle bool   `json:"is_google"`
}

// CreateUser registers a new account. A password is required unless the
// account is flagged as a Google sign-in account.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	if _, err := requireManageUsers(c); err != nil {
		return err
	}

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if req.Password == "" && !req.IsGoogle {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}
	if !authz.Known(role) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid role")
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "email already in use")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
		Avatar:   req.Avatar,
		IsGoogle: req.IsGoogle,
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "create", "user", user.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

// UpdateUser changes username and role, and re-hashes the password only
// when a non-empty value is supplied.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	if _, err := requireManageUsers(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Username) != "" {
		user.Username = req.Username
	}
	if req.Role != "" {
		if !authz.Known(req.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid role")
		}
		user.Role = req.Role
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "user", user.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": user})
}

// DeleteUser removes an account. Deleting your own account is rejected.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	session, err := requireManageUsers(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if id == session.UserID {
		return fiber.NewError(fiber.StatusBadRequest, "cannot delete your own account")
	}

	if err := h.db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "user", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}
