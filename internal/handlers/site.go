package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
)

// SiteHandler manages the single-row site content entities (about,
// contact, marketplace links, site settings) and the public home
// aggregate. Each singleton follows the same contract: GET returns the
// row or an empty default, PUT upserts the one conventional row.
type SiteHandler struct {
	db       *gorm.DB
	activity *services.ActivityRecorder
}

// NewSiteHandler constructs SiteHandler.
func NewSiteHandler(db *gorm.DB, activity *services.ActivityRecorder) *SiteHandler {
	return &SiteHandler{db: db, activity: activity}
}

// Home returns the aggregate the public landing page renders: active
// banners in order, favorite products, categories and site settings.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	var banners []models.Banner
	if err := h.db.Where("is_active = ?", true).Order("sort_order asc").
		Find(&banners).Error; err != nil {
		return err
	}

	var favorites []models.Product
	if err := h.db.Where("favorite = ?", true).
		Preload("Images", sortOrderAsc).
		Preload("Options").
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return err
	}

	var categories []models.Category
	if err := h.db.Order("created_at desc").Find(&categories).Error; err != nil {
		return err
	}

	var settings models.SettingSite
	if err := h.db.First(&settings).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"banners":    banners,
			"favorites":  favorites,
			"categories": categories,
			"settings":   settings,
		},
	})
}

// About

// GetAbout returns the company profile content.
func (h *SiteHandler) GetAbout(c *fiber.Ctx) error {
	var about models.About
	if err := h.db.First(&about).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": about})
}

// UpsertAbout creates or updates the single about row.
func (h *SiteHandler) UpsertAbout(c *fiber.Ctx) error {
	var input models.About
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(input.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}

	var existing models.About
	result := h.db.First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		if err := h.db.Create(&input).Error; err != nil {
			return err
		}
		recordActivity(c, h.activity, "create", "about", input.ID.String())
		return c.JSON(fiber.Map{"success": true, "data": input})
	} else if result.Error != nil {
		return result.Error
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Vision = input.Vision
	existing.Mission = input.Mission
	existing.Image = input.Image

	if err := h.db.Save(&existing).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "about", existing.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// Contact

// GetContact returns the company's contact channels.
func (h *SiteHandler) GetContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := h.db.First(&contact).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": contact})
}

// UpsertContact creates or updates the single contact row.
func (h *SiteHandler) UpsertContact(c *fiber.Ctx) error {
	var input models.Contact
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
		}
	}

	var existing models.Contact
	result := h.db.First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		if err := h.db.Create(&input).Error; err != nil {
			return err
		}
		recordActivity(c, h.activity, "create", "contact", input.ID.String())
		return c.JSON(fiber.Map{"success": true, "data": input})
	} else if result.Error != nil {
		return result.Error
	}

	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Whatsapp = input.Whatsapp
	existing.Address = input.Address
	existing.MapsURL = input.MapsURL
	existing.Instagram = input.Instagram
	existing.Facebook = input.Facebook
	existing.Youtube = input.Youtube
	existing.TikTok = input.TikTok

	if err := h.db.Save(&existing).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "contact", existing.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// Marketplace links

// GetMarketplace returns the marketplace storefront links.
func (h *SiteHandler) GetMarketplace(c *fiber.Ctx) error {
	var marketplace models.Marketplace
	if err := h.db.First(&marketplace).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": marketplace})
}

// UpsertMarketplace creates or updates the single marketplace row.
func (h *SiteHandler) UpsertMarketplace(c *fiber.Ctx) error {
	var input models.Marketplace
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var existing models.Marketplace
	result := h.db.First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		if err := h.db.Create(&input).Error; err != nil {
			return err
		}
		recordActivity(c, h.activity, "create", "marketplace", input.ID.String())
		return c.JSON(fiber.Map{"success": true, "data": input})
	} else if result.Error != nil {
		return result.Error
	}

	existing.Tokopedia = input.Tokopedia
	existing.Shopee = input.Shopee
	existing.Lazada = input.Lazada
	existing.Blibli = input.Blibli
	existing.TikTok = input.TikTok

	if err := h.db.Save(&existing).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "marketplace", existing.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// Site settings

// GetSettings returns the site-wide metadata.
func (h *SiteHandler) GetSettings(c *fiber.Ctx) error {
	var settings models.SettingSite
	if err := h.db.First(&settings).Error; err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// UpsertSettings creates or updates the single settings row. The company
// name is required; a payload without it is rejected before any write, so
// the stored settings stay untouched.
func (h *SiteHandler) UpsertSettings(c *fiber.Ctx) error {
	var input models.SettingSite
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(input.CompanyName) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "nama_company is required")
	}

	var existing models.SettingSite
	result := h.db.First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		if err := h.db.Create(&input).Error; err != nil {
			return err
		}
		recordActivity(c, h.activity, "create", "site-settings", input.ID.String())
		return c.JSON(fiber.Map{"success": true, "data": input})
	} else if result.Error != nil {
		return result.Error
	}

	existing.CompanyName = input.CompanyName
	existing.Tagline = input.Tagline
	existing.Description = input.Description
	existing.Logo = input.Logo
	existing.Favicon = input.Favicon
	existing.Keywords = input.Keywords

	if err := h.db.Save(&existing).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "site-settings", existing.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": existing})
}
