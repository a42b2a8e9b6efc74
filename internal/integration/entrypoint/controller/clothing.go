package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardrobe-manager/backend/internal/application/usecase/clothing"
	"github.com/wardrobe-manager/backend/internal/application/usecase/donation"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
)

// clothingImagesField is the multipart field carrying clothing item images.
const clothingImagesField = "images"

// ClothingController handles clothing item endpoints.
type ClothingController struct {
	createUseCase   *clothing.CreateClothingUseCase
	listUseCase     *clothing.ListClothingUseCase
	getUseCase      *clothing.GetClothingUseCase
	updateUseCase   *clothing.UpdateClothingUseCase
	deleteUseCase   *clothing.DeleteClothingUseCase
	uploadUseCase   *clothing.UploadImagesUseCase
	donationUseCase *donation.SuggestDonationUseCase
}

// NewClothingController creates a new clothing controller instance.
func NewClothingController(
	createUseCase *clothing.CreateClothingUseCase,
	listUseCase *clothing.ListClothingUseCase,
	getUseCase *clothing.GetClothingUseCase,
	updateUseCase *clothing.UpdateClothingUseCase,
	deleteUseCase *clothing.DeleteClothingUseCase,
	uploadUseCase *clothing.UploadImagesUseCase,
	donationUseCase *donation.SuggestDonationUseCase,
) *ClothingController {
	return &ClothingController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		uploadUseCase:   uploadUseCase,
		donationUseCase: donationUseCase,
	}
}

// List handles GET /clothes requests.
func (c *ClothingController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), clothing.ListClothingInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClothingListResponse(output.Items))
}

// Create handles POST /clothes requests.
func (c *ClothingController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateClothingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingItemFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), clothing.CreateClothingInput{
		UserID:   userID,
		Name:     req.Name,
		Category: entity.ClothingCategory(req.Category),
		Color:    req.Color,
		Season:   req.Season,
		Occasion: req.Occasion,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClothingResponse(output.Item))
}

// Get handles GET /clothes/:id requests.
func (c *ClothingController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "clothing item")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), clothing.GetClothingInput{
		ItemID: itemID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClothingResponse(output.Item))
}

// Update handles PATCH /clothes/:id requests.
func (c *ClothingController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "clothing item")
	if !ok {
		return
	}

	var req dto.UpdateClothingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingItemFields))
		return
	}

	input := clothing.UpdateClothingInput{
		ItemID:   itemID,
		UserID:   userID,
		Name:     req.Name,
		Color:    req.Color,
		Season:   req.Season,
		Occasion: req.Occasion,
	}
	if req.Category != nil {
		category := entity.ClothingCategory(*req.Category)
		input.Category = &category
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

	ctx.JSON(http.StatusOK, dto.ToClothingResponse(output.Item))
}

// Delete handles DELETE /clothes/:id requests.
func (c *ClothingController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "clothing item")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), clothing.DeleteClothingInput{
		ItemID: itemID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestDonation handles GET /clothes/:id/suggest-donation requests.
func (c *ClothingController) SuggestDonation(ctx *gin.Context) {
	suggestDonation(ctx, c.donationUseCase, entity.ItemKindClothing, "clothing item")
}

// UploadImages handles POST /clothes/:id/images requests.
func (c *ClothingController) UploadImages(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "clothing item")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil || len(form.File[clothingImagesField]) == 0 {
		badRequest(ctx, "At least one image is required", string(domainerror.ErrCodeMissingItemFields))
		return
	}

	uploads, closeAll, err := openImageUploads(form.File[clothingImagesField])
	if err != nil {
		handleError(ctx, err)
		return
	}
	defer closeAll()

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), clothing.UploadImagesInput{
		ItemID: itemID,
		UserID: userID,
		Images: uploads,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClothingResponse(output.Item))
}

// openImageUploads opens every uploaded file. The returned func closes them.
func openImageUploads(headers []*multipart.FileHeader) ([]clothing.ImageUpload, func(), error) {
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	uploads := make([]clothing.ImageUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, file)
		uploads = append(uploads, clothing.ImageUpload{
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		})
	}

	return uploads, closeAll, nil
}

// suggestDonation serves the donation endpoint shared by clothing items and accessories.
func suggestDonation(ctx *gin.Context, useCase *donation.SuggestDonationUseCase, kind entity.ItemKind, resource string) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, resource)
	if !ok {
		return
	}

	output, err := useCase.Execute(ctx.Request.Context(), donation.SuggestDonationInput{
		UserID: userID,
		ItemID: itemID,
		Kind:   kind,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDonationSuggestionResponse(output))
}
