package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
	"github.com/example/corpweb/internal/utils"
)

// MessageHandler manages contact-form submissions.
type MessageHandler struct {
	db       *gorm.DB
	mailer   *services.MailerService
	activity *services.ActivityRecorder
	notifyTo string
}

// NewMessageHandler constructs MessageHandler.
func NewMessageHandler(db *gorm.DB, mailer *services.MailerService, activity *services.ActivityRecorder, notifyTo string) *MessageHandler {
	return &MessageHandler{db: db, mailer: mailer, activity: activity, notifyTo: notifyTo}
}

type messageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// CreateMessage stores a contact-form submission and notifies the admin
// inbox. The notification is best-effort: a mail failure never loses the
// message.
func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Body) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	message := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}

	if err := h.db.Create(&message).Error; err != nil {
		return err
	}

	if h.mailer != nil {
		_ = h.mailer.NotifyContactMessage(h.notifyTo, req.Name, req.Email, req.Subject, req.Body)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": message})
}

// ListMessages returns paginated submissions, newest first.
func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Message{}).Count(&total).Error; err != nil {
		return err
	}

	var messages []models.Message
	if err := h.db.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// DeleteMessage removes a reviewed submission.
func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Message{}, "id = ?", id).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "message", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}
