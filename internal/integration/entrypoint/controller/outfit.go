package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardrobe-manager/backend/internal/application/usecase/analytics"
	"github.com/wardrobe-manager/backend/internal/application/usecase/outfit"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
)

// OutfitController handles outfit, generation and analytics endpoints.
type OutfitController struct {
	createUseCase    *outfit.CreateOutfitUseCase
	listUseCase      *outfit.ListOutfitsUseCase
	getUseCase       *outfit.GetOutfitUseCase
	updateUseCase    *outfit.UpdateOutfitUseCase
	generateUseCase  *outfit.GenerateOutfitUseCase
	analyticsUseCase *analytics.GetWardrobeAnalyticsUseCase
}

// NewOutfitController creates a new outfit controller instance.
func NewOutfitController(
	createUseCase *outfit.CreateOutfitUseCase,
	listUseCase *outfit.ListOutfitsUseCase,
	getUseCase *outfit.GetOutfitUseCase,
	updateUseCase *outfit.UpdateOutfitUseCase,
	generateUseCase *outfit.GenerateOutfitUseCase,
	analyticsUseCase *analytics.GetWardrobeAnalyticsUseCase,
) *OutfitController {
	return &OutfitController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		generateUseCase:  generateUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// List handles GET /outfits requests.
func (c *OutfitController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), outfit.ListOutfitsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutfitListResponse(output.Outfits))
}

// Create handles POST /outfits requests.
func (c *OutfitController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateOutfitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingOutfitFields))
		return
	}

	clothingIDs, err := dto.ParseUUIDs(req.ClothingItems)
	if err != nil {
		badRequest(ctx, "Invalid clothing item ID format", string(domainerror.ErrCodeMissingOutfitFields))
		return
	}
	accessoryIDs, err := dto.ParseUUIDs(req.Accessories)
	if err != nil {
		badRequest(ctx, "Invalid accessory ID format", string(domainerror.ErrCodeMissingOutfitFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), outfit.CreateOutfitInput{
		UserID:           userID,
		Name:             req.Name,
		ClothingItems:    clothingIDs,
		Accessories:      accessoryIDs,
		WeatherCondition: req.WeatherCondition,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOutfitResponse(output.Outfit))
}

// Get handles GET /outfits/:id requests.
func (c *OutfitController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	outfitID, ok := pathID(ctx, "outfit")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), outfit.GetOutfitInput{
		OutfitID: outfitID,
		UserID:   userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutfitWithItemsResponse(output.Outfit))
}

// Update handles PATCH /outfits/:id requests.
func (c *OutfitController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	outfitID, ok := pathID(ctx, "outfit")
	if !ok {
		return
	}

	var req dto.UpdateOutfitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingOutfitFields))
		return
	}

	clothingIDs, err := dto.ParseUUIDs(req.ClothingItems)
	if err != nil {
		badRequest(ctx, "Invalid clothing item ID format", string(domainerror.ErrCodeMissingOutfitFields))
		return
	}
	accessoryIDs, err := dto.ParseUUIDs(req.Accessories)
	if err != nil {
		badRequest(ctx, "Invalid accessory ID format", string(domainerror.ErrCodeMissingOutfitFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), outfit.UpdateOutfitInput{
		OutfitID:         outfitID,
		UserID:           userID,
		Name:             req.Name,
		ClothingItems:    clothingIDs,
		Accessories:      accessoryIDs,
		WeatherCondition: req.WeatherCondition,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOutfitResponse(output.Outfit))
}

// Generate handles POST /outfits/generate requests.
// The body is optional; without a location the user's stored location is used.
func (c *OutfitController) Generate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.GenerateOutfitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingOutfitFields))
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), outfit.GenerateOutfitInput{
		UserID:   userID,
		Location: req.Location,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGenerateOutfitResponse(output))
}

// Analytics handles GET /outfits/analytics requests.
func (c *OutfitController) Analytics(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), analytics.GetWardrobeAnalyticsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output.Report))
}
