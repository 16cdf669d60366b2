package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/application/auth"
	"github.com/kalasetu/marketplace/internal/application/cart"
	"github.com/kalasetu/marketplace/internal/application/catalog"
	"github.com/kalasetu/marketplace/internal/application/dashboard"
	"github.com/kalasetu/marketplace/internal/application/story"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
	"github.com/kalasetu/marketplace/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Sessions    *SessionManager
	Users       repository.UserRepository
	AuthUC      *auth.UseCase
	CatalogUC   *catalog.UseCase
	CartUC      *cart.UseCase
	StoryUC     *story.UseCase
	DashboardUC *dashboard.UseCase
	Media       *MediaStore
	Log         *logger.Logger
}

// Router registers the site routes. LoadUser runs on everything so templates
// always know who is browsing; the role gates sit per route group.
func Router(app *fiber.App, deps RouterDeps) {
	h := NewHandlers(deps.Sessions, deps.AuthUC, deps.CatalogUC, deps.CartUC,
		deps.StoryUC, deps.DashboardUC, deps.Media, deps.Log)

	app.Use(LoadUser(deps.Sessions, deps.Users))

	// Public pages
	app.Get("/", h.Landing)
	app.Get("/marketplace", h.Marketplace)
	app.Get("/products/:id", h.ProductDetail)
	app.Get("/artisan/:id", h.ArtisanProfile)

	// Auth
	app.Get("/login", h.LoginPage)
	app.Post("/login", h.Login)
	app.Get("/register", h.RegisterPage)
	app.Post("/register", h.Register)
	app.Post("/logout", h.Logout)

	// Cart (any authenticated role)
	authed := RequireAuth(deps.Sessions)
	app.Post("/add-to-cart/:id", authed, h.AddToCart)
	app.Get("/cart", authed, h.ViewCart)
	app.Post("/checkout", authed, h.Checkout)

	// Artisan
	artisan := RequireRole(deps.Sessions, entity.RoleArtisan)
	app.Get("/artisan-dashboard", artisan, h.ArtisanDashboard)
	app.Get("/upload-product", artisan, h.UploadProductPage)
	app.Post("/upload-product", artisan, h.UploadProduct)
	app.Get("/artisan/story/add", artisan, h.AddStoryPage)
	app.Post("/artisan/story/add", artisan, h.AddStory)

	// Admin
	admin := RequireRole(deps.Sessions, entity.RoleAdmin)
	app.Get("/admin-dashboard", admin, h.AdminDashboard)
	app.Post("/approve-product/:id", admin, h.ApproveProduct)
	app.Post("/reject-product/:id", admin, h.RejectProduct)

	// Buyer
	app.Get("/buyer-dashboard", RequireRole(deps.Sessions, entity.RoleBuyer), h.BuyerDashboard)

	// Consultant
	consultant := RequireRole(deps.Sessions, entity.RoleConsultant)
	app.Get("/consultant-dashboard", consultant, h.ConsultantDashboard)
	app.Post("/verify-product/:id", consultant, h.VerifyProduct)
}
