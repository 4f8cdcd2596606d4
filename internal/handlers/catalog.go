package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
	"github.com/example/corpweb/internal/utils"
)

// CatalogHandler manages categories and brand partners.
type CatalogHandler struct {
	db       *gorm.DB
	activity *services.ActivityRecorder
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(db *gorm.DB, activity *services.ActivityRecorder) *CatalogHandler {
	return &CatalogHandler{db: db, activity: activity}
}

// Categories

// ListCategories returns paginated categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	var total int64
	if err := h.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return err
	}

	var categories []models.Category
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&categories).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetCategory returns a single category with its brands.
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.Category
	if err := h.db.Preload("Brands").First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory persists a new category.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	category := models.Category{Name: req.Name}
	if err := h.db.Create(&category).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "create", "category", category.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

// UpdateCategory updates an existing category.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	category.Name = req.Name
	if err := h.db.Save(&category).Error; err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "category", category.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category. Its junction rows are cleared so
// products and brands that referenced it simply lose the link.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		category := models.Category{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&category).Association("Products").Clear(); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Model(&category).Association("Brands").Clear(); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "category", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}

// Brand partners

// ListBrands returns paginated brand partners.
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	var total int64
	if err := h.db.Model(&models.BrandPartner{}).Count(&total).Error; err != nil {
		return err
	}

	var brands []models.BrandPartner
	if err := h.db.Preload("Categories").Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").Find(&brands).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    brands,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetBrand returns a single brand partner with its categories.
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var brand models.BrandPartner
	if err := h.db.Preload("Categories").Preload("About").
		First(&brand, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "brand not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": brand})
}

type brandRequest struct {
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	AboutID     string   `json:"about_id"`
	CategoryIDs []string `json:"category_ids"`
}

// CreateBrand persists a new brand partner and connects its categories.
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	brand, err := buildBrandFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := attachBrandCategories(tx, &brand, req.CategoryIDs); err != nil {
			return err
		}
		return tx.Create(&brand).Error
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "create", "brand", brand.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": brand})
}

// UpdateBrand updates a brand partner, replacing its category set with
// exactly the submitted ids.
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.BrandPartner
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "brand not found")
		}
		return err
	}

	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	brand, err := buildBrandFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		existing.Name = brand.Name
		existing.Image = brand.Image
		existing.AboutID = brand.AboutID
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		if err := attachBrandCategories(tx, &brand, req.CategoryIDs); err != nil {
			return err
		}
		return tx.Model(&existing).Association("Categories").Replace(brand.Categories)
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "brand", existing.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// DeleteBrand removes a brand partner and its category links.
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		brand := models.BrandPartner{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&brand).Association("Categories").Clear(); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&models.BrandPartner{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "brand", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}

func buildBrandFromRequest(req brandRequest) (models.BrandPartner, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.BrandPartner{}, errors.New("name is required")
	}

	brand := models.BrandPartner{
		Name:  req.Name,
		Image: req.Image,
	}

	if req.AboutID != "" {
		aboutID, err := uuid.Parse(req.AboutID)
		if err != nil {
			return models.BrandPartner{}, errors.New("invalid about_id")
		}
		brand.AboutID = &aboutID
	}

	return brand, nil
}

func attachBrandCategories(tx *gorm.DB, brand *models.BrandPartner, ids []string) error {
	brand.Categories = nil
	categoryIDs := stringSliceToUUID(ids)
	if len(categoryIDs) == 0 {
		return nil
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return err
	}
	brand.Categories = categories
	return nil
}
