package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardrobe-manager/backend/internal/application/usecase/accessory"
	"github.com/wardrobe-manager/backend/internal/application/usecase/donation"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
)

// accessoryImageField is the multipart field carrying the accessory image.
const accessoryImageField = "image"

// AccessoryController handles accessory endpoints.
type AccessoryController struct {
	createUseCase   *accessory.CreateAccessoryUseCase
	listUseCase     *accessory.ListAccessoriesUseCase
	getUseCase      *accessory.GetAccessoryUseCase
	updateUseCase   *accessory.UpdateAccessoryUseCase
	deleteUseCase   *accessory.DeleteAccessoryUseCase
	uploadUseCase   *accessory.UploadImageUseCase
	donationUseCase *donation.SuggestDonationUseCase
}

// NewAccessoryController creates a new accessory controller instance.
func NewAccessoryController(
	createUseCase *accessory.CreateAccessoryUseCase,
	listUseCase *accessory.ListAccessoriesUseCase,
	getUseCase *accessory.GetAccessoryUseCase,
	updateUseCase *accessory.UpdateAccessoryUseCase,
	deleteUseCase *accessory.DeleteAccessoryUseCase,
	uploadUseCase *accessory.UploadImageUseCase,
	donationUseCase *donation.SuggestDonationUseCase,
) *AccessoryController {
	return &AccessoryController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		uploadUseCase:   uploadUseCase,
		donationUseCase: donationUseCase,
	}
}

// List handles GET /accessories requests.
func (c *AccessoryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), accessory.ListAccessoriesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccessoryListResponse(output.Accessories))
}

// Create handles POST /accessories requests.
func (c *AccessoryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateAccessoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingItemFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), accessory.CreateAccessoryInput{
		UserID:         userID,
		Name:           req.Name,
		Color:          req.Color,
		Type:           req.Type,
		CompatibleWith: req.CompatibleWith,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccessoryResponse(output.Accessory))
}

// Get handles GET /accessories/:id requests.
func (c *AccessoryController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accessoryID, ok := pathID(ctx, "accessory")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), accessory.GetAccessoryInput{
		AccessoryID: accessoryID,
		UserID:      userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccessoryResponse(output.Accessory))
}

// Update handles PATCH /accessories/:id requests.
func (c *AccessoryController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accessoryID, ok := pathID(ctx, "accessory")
	if !ok {
		return
	}

	var req dto.UpdateAccessoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingItemFields))
		return
	}

	input := accessory.UpdateAccessoryInput{
		AccessoryID:    accessoryID,
		UserID:         userID,
		Name:           req.Name,
		Color:          req.Color,
		Type:           req.Type,
		CompatibleWith: req.CompatibleWith,
	}
	if req.Status != nil {
		status := entity.ItemStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccessoryResponse(output.Accessory))
}

// Delete handles DELETE /accessories/:id requests.
func (c *AccessoryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accessoryID, ok := pathID(ctx, "accessory")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), accessory.DeleteAccessoryInput{
		AccessoryID: accessoryID,
		UserID:      userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestDonation handles GET /accessories/:id/suggest-donation requests.
func (c *AccessoryController) SuggestDonation(ctx *gin.Context) {
	suggestDonation(ctx, c.donationUseCase, entity.ItemKindAccessory, "accessory")
}

// UploadImage handles POST /accessories/:id/image requests.
func (c *AccessoryController) UploadImage(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	accessoryID, ok := pathID(ctx, "accessory")
	if !ok {
		return
	}

	header, err := ctx.FormFile(accessoryImageField)
	if err != nil {
		badRequest(ctx, "An image is required", string(domainerror.ErrCodeMissingItemFields))
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(ctx, err)
		return
	}
	defer file.Close()

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), accessory.UploadImageInput{
		AccessoryID: accessoryID,
		UserID:      userID,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccessoryResponse(output.Accessory))
}
