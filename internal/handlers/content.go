package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
)

// ContentHandler manages banners and FAQs.
type ContentHandler struct {
	db       *gorm.DB
	activity *services.ActivityRecorder
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(db *gorm.DB, activity *services.ActivityRecorder) *ContentHandler {
	return &ContentHandler{db: db, activity: activity}
}

// Banners

// ListPublicBanners returns active banners in display order.
func (h *ContentHandler) ListPublicBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := h.db.Where("is_active = ?", true).Order("sort_order asc").
		Find(&banners).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": banners})
}

// ListBanners returns all banners for the back office.
func (h *ContentHandler) ListBanners(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := h.db.Order("sort_order asc").Find(&banners).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": banners})
}

type bannerRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// CreateBanner persists a new banner.
func (h *ContentHandler) CreateBanner(c *fiber.Ctx) error {
	var req bannerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}

	banner := models.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.db.Create(&banner).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "create", "banner", banner.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": banner})
}

// UpdateBanner updates an existing banner.
func (h *ContentHandler) UpdateBanner(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var banner models.Banner
	if err := h.db.First(&banner, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "banner not found")
		}
		return err
	}

	var req bannerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}

	banner.Title = req.Title
	banner.Description = req.Description
	banner.Image = req.Image
	banner.SortOrder = req.SortOrder
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.db.Save(&banner).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "banner", banner.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": banner})
}

// DeleteBanner removes a banner.
func (h *ContentHandler) DeleteBanner(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Banner{}, "id = ?", id).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "banner", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}

// FAQs

// ListPublicFAQs returns active FAQs in display order.
func (h *ContentHandler) ListPublicFAQs(c *fiber.Ctx) error {
	var faqs []models.FAQ
	if err := h.db.Where("is_active = ?", true).Order("sort_order asc").
		Find(&faqs).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": faqs})
}

// ListFAQs returns all FAQs for the back office.
func (h *ContentHandler) ListFAQs(c *fiber.Ctx) error {
	var faqs []models.FAQ
	if err := h.db.Order("sort_order asc").Find(&faqs).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": faqs})
}

type faqRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// CreateFAQ persists a new FAQ entry.
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question and answer are required")
	}

	faq := models.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := h.db.Create(&faq).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "create", "faq", faq.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": faq})
}

// UpdateFAQ updates an existing FAQ entry.
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var faq models.FAQ
	if err := h.db.First(&faq, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "faq not found")
		}
		return err
	}

	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question and answer are required")
	}

	faq.Question = req.Question
	faq.Answer = req.Answer
	faq.SortOrder = req.SortOrder
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := h.db.Save(&faq).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "faq", faq.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": faq})
}

// DeleteFAQ removes a FAQ entry.
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.FAQ{}, "id = ?", id).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "faq", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}
