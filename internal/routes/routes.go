package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/corpweb/internal/config"
	"github.com/example/corpweb/internal/handlers"
	"github.com/example/corpweb/internal/middleware"
	"github.com/example/corpweb/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mailer := services.NewMailerService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	google := services.NewGoogleService(cfg.GoogleClientID)
	activity := services.NewActivityRecorder(db)

	authHandler := handlers.NewAuthHandler(db, cfg, google)
	productHandler := handlers.NewProductHandler(db, activity)
	catalogHandler := handlers.NewCatalogHandler(db, activity)
	contentHandler := handlers.NewContentHandler(db, activity)
	siteHandler := handlers.NewSiteHandler(db, activity)
	userHandler := handlers.NewUserHandler(db, activity)
	messageHandler := handlers.NewMessageHandler(db, mailer, activity, cfg.ContactNotifyTo)
	uploadHandler := handlers.NewUploadHandler(cfg)
	adminHandler := handlers.NewAdminHandler(db)

	api := app.Group("/api")

	// Public storefront reads
	api.Get("/home", siteHandler.Home)
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/categories/:id", catalogHandler.GetCategory)
	api.Get("/brands", catalogHandler.ListBrands)
	api.Get("/brands/:id", catalogHandler.GetBrand)
	api.Get("/banners", contentHandler.ListPublicBanners)
	api.Get("/faqs", contentHandler.ListPublicFAQs)
	api.Get("/about", siteHandler.GetAbout)
	api.Get("/contact", siteHandler.GetContact)
	api.Get("/marketplaces", siteHandler.GetMarketplace)
	api.Get("/site-settings", siteHandler.GetSettings)
	api.Post("/messages", messageHandler.CreateMessage)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/google", authHandler.GoogleLogin)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/refresh", middleware.RequireSession(cfg), authHandler.Refresh)
	auth.Get("/me", middleware.RequireSession(cfg), authHandler.Me)

	// Back office, behind the role gate
	admin := api.Group("/admin", middleware.AdminGate(cfg))

	admin.Get("/dashboard", adminHandler.DashboardStats)
	admin.Get("/activity", adminHandler.RecentActivity)

	productHandler.RegisterAdminRoutes(admin.Group("/products"))

	categories := admin.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)

	brands := admin.Group("/brands")
	brands.Get("/", catalogHandler.ListBrands)
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/:id", catalogHandler.GetBrand)
	brands.Put("/:id", catalogHandler.UpdateBrand)
	brands.Delete("/:id", catalogHandler.DeleteBrand)

	banners := admin.Group("/banners")
	banners.Get("/", contentHandler.ListBanners)
	banners.Post("/", contentHandler.CreateBanner)
	banners.Put("/:id", contentHandler.UpdateBanner)
	banners.Delete("/:id", contentHandler.DeleteBanner)

	faqs := admin.Group("/faqs")
	faqs.Get("/", contentHandler.ListFAQs)
	faqs.Post("/", contentHandler.CreateFAQ)
	faqs.Put("/:id", contentHandler.UpdateFAQ)
	faqs.Delete("/:id", contentHandler.DeleteFAQ)

	admin.Get("/about", siteHandler.GetAbout)
	admin.Put("/about", siteHandler.UpsertAbout)
	admin.Get("/contact", siteHandler.GetContact)
	admin.Put("/contact", siteHandler.UpsertContact)
	admin.Get("/marketplaces", siteHandler.GetMarketplace)
	admin.Put("/marketplaces", siteHandler.UpsertMarketplace)
	admin.Get("/site-settings", siteHandler.GetSettings)
	admin.Put("/site-settings", siteHandler.UpsertSettings)

	users := admin.Group("/users")
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	messages := admin.Group("/messages")
	messages.Get("/", messageHandler.ListMessages)
	messages.Delete("/:id", messageHandler.DeleteMessage)

	admin.Post("/upload", uploadHandler.Upload)
}
