// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/wardrobe-manager/backend/config"
	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/application/usecase/accessory"
	"github.com/wardrobe-manager/backend/internal/application/usecase/analytics"
	"github.com/wardrobe-manager/backend/internal/application/usecase/auth"
	"github.com/wardrobe-manager/backend/internal/application/usecase/clothing"
	"github.com/wardrobe-manager/backend/internal/application/usecase/donation"
	"github.com/wardrobe-manager/backend/internal/application/usecase/laundry"
	"github.com/wardrobe-manager/backend/internal/application/usecase/outfit"
	"github.com/wardrobe-manager/backend/internal/application/usecase/weather"
	"github.com/wardrobe-manager/backend/internal/infra/server/router"
	"github.com/wardrobe-manager/backend/internal/integration/adapters"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/controller"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/wardrobe-manager/backend/internal/integration/persistence"
)

// Infrastructure carries the adapters built outside the injector.
// Cache may be nil when the analytics cache is disabled. Clock defaults to the system clock.
type Infrastructure struct {
	Images      adapter.ImageStore
	Clock       adapter.Clock
	Cache       adapter.AnalyticsCache
	Metrics     adapter.UsageMetrics
	DBHealth    controller.HealthChecker
	CacheHealth controller.HealthChecker
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, infra Infrastructure) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	clothingRepo := persistence.NewClothingRepository(db)
	accessoryRepo := persistence.NewAccessoryRepository(db)
	laundryRepo := persistence.NewLaundryRepository(db)
	outfitRepo := persistence.NewOutfitRepository(db)
	weatherRepo := persistence.NewWeatherRepository(db)
	transactor := persistence.NewTransactor(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT, tokenRepo)
	clock := infra.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	random := adapters.NewRandomSource()

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)

	// Donation suggestions are shared by clothing items and accessories
	suggestDonationUseCase := donation.NewSuggestDonationUseCase(clothingRepo, accessoryRepo, clock)

	clothingController := controller.NewClothingController(
		clothing.NewCreateClothingUseCase(clothingRepo, infra.Cache),
		clothing.NewListClothingUseCase(clothingRepo),
		clothing.NewGetClothingUseCase(clothingRepo),
		clothing.NewUpdateClothingUseCase(clothingRepo, infra.Cache),
		clothing.NewDeleteClothingUseCase(clothingRepo, infra.Images, infra.Cache),
		clothing.NewUploadImagesUseCase(clothingRepo, infra.Images, infra.Cache),
		suggestDonationUseCase,
	)

	accessoryController := controller.NewAccessoryController(
		accessory.NewCreateAccessoryUseCase(accessoryRepo, infra.Cache),
		accessory.NewListAccessoriesUseCase(accessoryRepo),
		accessory.NewGetAccessoryUseCase(accessoryRepo),
		accessory.NewUpdateAccessoryUseCase(accessoryRepo, infra.Cache),
		accessory.NewDeleteAccessoryUseCase(accessoryRepo, infra.Images, infra.Cache),
		accessory.NewUploadImageUseCase(accessoryRepo, infra.Images, infra.Cache),
		suggestDonationUseCase,
	)

	laundryController := controller.NewLaundryController(
		laundry.NewCreateLaundryUseCase(laundryRepo, clothingRepo),
		laundry.NewListLaundryUseCase(laundryRepo, clothingRepo),
		laundry.NewUpdateLaundryUseCase(laundryRepo, clothingRepo),
		laundry.NewDeleteLaundryUseCase(laundryRepo),
	)

	// Create the recommendation engine
	generateUseCase := outfit.NewGenerateOutfitUseCase(outfit.GenerateOutfitDeps{
		UserRepo:      userRepo,
		WeatherRepo:   weatherRepo,
		ClothingRepo:  clothingRepo,
		AccessoryRepo: accessoryRepo,
		LaundryRepo:   laundryRepo,
		OutfitRepo:    outfitRepo,
		Transactor:    transactor,
		Selector:      outfit.NewSelector(random),
		Tracker:       outfit.NewUsageTracker(clothingRepo, accessoryRepo, infra.Metrics),
		Clock:         clock,
		Cache:         infra.Cache,
		Metrics:       infra.Metrics,
	})

	outfitController := controller.NewOutfitController(
		outfit.NewCreateOutfitUseCase(outfitRepo, clothingRepo, accessoryRepo, infra.Cache),
		outfit.NewListOutfitsUseCase(outfitRepo, clothingRepo, accessoryRepo),
		outfit.NewGetOutfitUseCase(outfitRepo, clothingRepo, accessoryRepo),
		outfit.NewUpdateOutfitUseCase(outfitRepo, clothingRepo, accessoryRepo),
		generateUseCase,
		analytics.NewGetWardrobeAnalyticsUseCase(clothingRepo, accessoryRepo, outfitRepo, infra.Cache, infra.Metrics),
	)

	weatherController := controller.NewWeatherController(
		weather.NewRecordWeatherUseCase(weatherRepo, clock),
		weather.NewGetLatestWeatherUseCase(weatherRepo),
	)

	controllers := router.Controllers{
		Health: controller.NewHealthController(infra.DBHealth, infra.CacheHealth),
		Auth: controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
		),
		User:      controller.NewUserController(updateProfileUseCase),
		Clothing:  clothingController,
		Accessory: accessoryController,
		Laundry:   laundryController,
		Outfit:    outfitController,
		Weather:   weatherController,
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(controllers, loginRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
