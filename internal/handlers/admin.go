package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/utils"
)

// AdminHandler serves the dashboard aggregate and the activity log.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// DashboardStats returns aggregate counts for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	counts := map[string]interface{}{
		"products":   &models.Product{},
		"categories": &models.Category{},
		"brands":     &models.BrandPartner{},
		"banners":    &models.Banner{},
		"faqs":       &models.FAQ{},
		"messages":   &models.Message{},
		"users":      &models.User{},
	}

	data := fiber.Map{}
	for name, model := range counts {
		var total int64
		if err := h.db.Model(model).Count(&total).Error; err != nil {
			return err
		}
		data["total_"+name] = total
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}

// RecentActivity returns the newest audit-trail entries.
func (h *AdminHandler) RecentActivity(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		return err
	}

	var entries []models.ActivityLog
	if err := h.db.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&entries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}
