// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/controller"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers served under /api/v1.
type Controllers struct {
	Health    *controller.HealthController
	Auth      *controller.AuthController
	User      *controller.UserController
	Clothing  *controller.ClothingController
	Accessory *controller.AccessoryController
	Laundry   *controller.LaundryController
	Outfit    *controller.OutfitController
	Weather   *controller.WeatherController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware

	metricsPath    string
	metricsHandler http.Handler
	uploadsPath    string
	uploadsDir     string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// WithMetrics exposes a Prometheus handler at path.
func (r *Router) WithMetrics(path string, handler http.Handler) *Router {
	r.metricsPath = path
	r.metricsHandler = handler
	return r
}

// WithUploads serves locally stored images from dir under path.
func (r *Router) WithUploads(path, dir string) *Router {
	r.uploadsPath = path
	r.uploadsDir = dir
	return r
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupOperationalRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupOperationalRoutes configures health, metrics and static image endpoints.
func (r *Router) setupOperationalRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)

	if r.metricsHandler != nil && r.metricsPath != "" {
		r.engine.GET(r.metricsPath, gin.WrapH(r.metricsHandler))
	}

	if r.uploadsDir != "" && r.uploadsPath != "" {
		r.engine.Static(r.uploadsPath, r.uploadsDir)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	c := r.controllers

	// Auth routes are only set up when the database is available
	if c.Auth != nil {
		auth := v1.Group("/auth")
		{
			auth.POST("/register", c.Auth.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
			auth.POST("/refresh", c.Auth.RefreshToken)
			auth.POST("/logout", c.Auth.Logout)
		}
	}

	if r.authMiddleware == nil {
		return
	}

	// Everything below is scoped to the authenticated user
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if c.User != nil {
		protected.PATCH("/users/me", c.User.UpdateProfile)
	}

	if c.Weather != nil {
		weather := protected.Group("/weather")
		{
			weather.POST("", c.Weather.Record)
			weather.GET("/latest", c.Weather.Latest)
		}
	}

	if c.Clothing != nil {
		clothes := protected.Group("/clothes")
		{
			clothes.GET("", c.Clothing.List)
			clothes.POST("", c.Clothing.Create)
			clothes.GET("/:id", c.Clothing.Get)
			clothes.PATCH("/:id", c.Clothing.Update)
			clothes.DELETE("/:id", c.Clothing.Delete)
			clothes.GET("/:id/suggest-donation", c.Clothing.SuggestDonation)
			clothes.POST("/:id/images", c.Clothing.UploadImages)
		}
	}

	if c.Accessory != nil {
		accessories := protected.Group("/accessories")
		{
			accessories.GET("", c.Accessory.List)
			accessories.POST("", c.Accessory.Create)
			accessories.GET("/:id", c.Accessory.Get)
			accessories.PATCH("/:id", c.Accessory.Update)
			accessories.DELETE("/:id", c.Accessory.Delete)
			accessories.GET("/:id/suggest-donation", c.Accessory.SuggestDonation)
			accessories.POST("/:id/image", c.Accessory.UploadImage)
		}
	}

	if c.Laundry != nil {
		laundry := protected.Group("/laundry")
		{
			laundry.GET("", c.Laundry.List)
			laundry.POST("", c.Laundry.Create)
			laundry.PATCH("/:id", c.Laundry.Update)
			laundry.DELETE("/:id", c.Laundry.Delete)
		}
	}

	if c.Outfit != nil {
		outfits := protected.Group("/outfits")
		{
			outfits.GET("", c.Outfit.List)
			outfits.POST("", c.Outfit.Create)
			outfits.POST("/generate", c.Outfit.Generate)
			outfits.GET("/analytics", c.Outfit.Analytics)
			outfits.GET("/:id", c.Outfit.Get)
			outfits.PATCH("/:id", c.Outfit.Update)
		}
	}
}
