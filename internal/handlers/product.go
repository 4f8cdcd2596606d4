package handlers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/models"
	"github.com/example/corpweb/internal/services"
	"github.com/example/corpweb/internal/utils"
)

// ProductHandler manages the product aggregate: the product row plus its
// images, options, option images, option specs and category links.
type ProductHandler struct {
	db       *gorm.DB
	activity *services.ActivityRecorder
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB, activity *services.ActivityRecorder) *ProductHandler {
	return &ProductHandler{db: db, activity: activity}
}

// ListProducts returns paginated products with optional filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if v := c.Query("category_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("id IN (SELECT product_id FROM product_categories WHERE category_id = ?)", id)
		}
	}

	if v := c.Query("favorite"); v != "" {
		query = query.Where("favorite = ?", v == "true")
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Preload("Images", sortOrderAsc).
		Preload("Options").
		Preload("Categories").
		Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct loads the full aggregate.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.Preload("Images", sortOrderAsc).
		Preload("Options").
		Preload("Options.Images", sortOrderAsc).
		Preload("Options.Specs").
		Preload("Categories").
		First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

func sortOrderAsc(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order asc")
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Favorite    bool            `json:"favorite"`
	CategoryIDs []string        `json:"category_ids"`
	Images      []string        `json:"images"`
	Options     []optionRequest `json:"options"`
}

type optionRequest struct {
	Color         string        `json:"color"`
	Variant       string        `json:"variant"`
	OriginalPrice string        `json:"original_price"`
	SalePrice     string        `json:"sale_price"`
	Stock         string        `json:"stock"`
	Images        []string      `json:"images"`
	Specs         []specRequest `json:"specs"`
}

type specRequest struct {
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateProduct persists a new aggregate in one transaction.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := attachCategories(tx, &product, req.CategoryIDs); err != nil {
			return err
		}
		return tx.Create(&product).Error
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "create", "product", product.ID.String())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct replaces the aggregate's children and category set with
// the submitted payload, all inside one transaction.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.Preload("Options").First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProductChildren(tx, &existing); err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"favorite":    product.Favorite,
		}).Error; err != nil {
			return err
		}

		for i := range product.Images {
			product.Images[i].ProductID = product.ID
		}
		if len(product.Images) > 0 {
			if err := tx.Create(&product.Images).Error; err != nil {
				return err
			}
		}

		for i := range product.Options {
			product.Options[i].ProductID = product.ID
		}
		if len(product.Options) > 0 {
			if err := tx.Create(&product.Options).Error; err != nil {
				return err
			}
		}

		if err := attachCategories(tx, &product, req.CategoryIDs); err != nil {
			return err
		}
		return tx.Model(&existing).Association("Categories").Replace(product.Categories)
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "update", "product", product.ID.String())
	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes the product and everything it owns.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.Preload("Options").First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProductChildren(tx, &existing); err != nil {
			return err
		}
		if err := tx.Model(&existing).Association("Categories").Clear(); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	recordActivity(c, h.activity, "delete", "product", id.String())
	return c.SendStatus(fiber.StatusNoContent)
}

// deleteProductChildren removes every owned child row: option images and
// specs first, then options and product images.
func deleteProductChildren(tx *gorm.DB, product *models.Product) error {
	optionIDs := make([]uuid.UUID, 0, len(product.Options))
	for _, option := range product.Options {
		optionIDs = append(optionIDs, option.ID)
	}

	if len(optionIDs) > 0 {
		if err := tx.Where("product_option_id IN ?", optionIDs).Delete(&models.OptionImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_option_id IN ?", optionIDs).Delete(&models.ProductSpec{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductOption{}).Error; err != nil {
		return err
	}
	return tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error
}

func buildProductFromRequest(req productRequest) (models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Product{}, errors.New("name is required")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Favorite:    req.Favorite,
	}

	for idx, url := range req.Images {
		product.Images = append(product.Images, models.ProductImage{
			URL:       url,
			SortOrder: idx,
		})
	}

	for i, opt := range req.Options {
		option, err := buildOptionFromRequest(opt)
		if err != nil {
			return models.Product{}, fmt.Errorf("option %d: %w", i+1, err)
		}
		product.Options = append(product.Options, option)
	}

	return product, nil
}

func buildOptionFromRequest(req optionRequest) (models.ProductOption, error) {
	originalPrice, err := parsePrice(req.OriginalPrice, "original_price")
	if err != nil {
		return models.ProductOption{}, err
	}

	salePrice, err := parsePrice(req.SalePrice, "sale_price")
	if err != nil {
		return models.ProductOption{}, err
	}

	stock := 0
	if strings.TrimSpace(req.Stock) != "" {
		stock, err = strconv.Atoi(strings.TrimSpace(req.Stock))
		if err != nil || stock < 0 {
			return models.ProductOption{}, errors.New("invalid stock")
		}
	}

	option := models.ProductOption{
		Color:         req.Color,
		Variant:       req.Variant,
		OriginalPrice: originalPrice,
		SalePrice:     salePrice,
		Stock:         stock,
	}

	for idx, url := range req.Images {
		option.Images = append(option.Images, models.OptionImage{
			URL:       url,
			SortOrder: idx,
		})
	}

	for _, spec := range req.Specs {
		option.Specs = append(option.Specs, models.ProductSpec{
			Description: spec.Description,
			Image:       spec.Image,
		})
	}

	return option, nil
}

// parsePrice rejects anything that is not a plain non-negative number.
// Prices arrive as strings from the admin forms; a garbage value is a
// client bug we refuse rather than persist.
func parsePrice(value, field string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}

	// ParseFloat also accepts "NaN" and "Inf" spellings, which are not prices.
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed < 0 {
		return 0, errors.New("invalid " + field)
	}
	return parsed, nil
}

func attachCategories(tx *gorm.DB, product *models.Product, ids []string) error {
	product.Categories = nil
	categoryIDs := stringSliceToUUID(ids)
	if len(categoryIDs) == 0 {
		return nil
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return err
	}
	product.Categories = categories
	return nil
}

func stringSliceToUUID(values []string) []uuid.UUID {
	var ids []uuid.UUID
	for _, value := range values {
		if value == "" {
			continue
		}
		if id, err := uuid.Parse(value); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// RegisterAdminRoutes attaches product management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/", h.ListProducts)
	router.Get("/:id", h.GetProduct)
	router.Post("/", h.CreateProduct)
	router.Put("/:id", h.UpdateProduct)
	router.Delete("/:id", h.DeleteProduct)
}
