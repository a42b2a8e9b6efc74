package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/usecase/laundry"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
)

// LaundryController handles laundry schedule endpoints.
type LaundryController struct {
	createUseCase *laundry.CreateLaundryUseCase
	listUseCase   *laundry.ListLaundryUseCase
	updateUseCase *laundry.UpdateLaundryUseCase
	deleteUseCase *laundry.DeleteLaundryUseCase
}

// NewLaundryController creates a new laundry controller instance.
func NewLaundryController(
	createUseCase *laundry.CreateLaundryUseCase,
	listUseCase *laundry.ListLaundryUseCase,
	updateUseCase *laundry.UpdateLaundryUseCase,
	deleteUseCase *laundry.DeleteLaundryUseCase,
) *LaundryController {
	return &LaundryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /laundry requests.
func (c *LaundryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), laundry.ListLaundryInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLaundryListResponse(output.Records))
}

// Create handles POST /laundry requests.
func (c *LaundryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateLaundryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingLaundryFields))
		return
	}

	items, err := dto.ParseUUIDs(req.Items)
	if err != nil {
		badRequest(ctx, "Invalid item ID format", string(domainerror.ErrCodeMissingLaundryFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), laundry.CreateLaundryInput{
		UserID:        userID,
		Items:         items,
		ScheduledDate: req.ScheduledDate,
		Status:        entity.LaundryStatus(req.Status),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLaundryResponse(output.Record))
}

// Update handles PATCH /laundry/:id requests.
func (c *LaundryController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := pathID(ctx, "laundry record")
	if !ok {
		return
	}

	var req dto.UpdateLaundryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingLaundryFields))
		return
	}

	var items []uuid.UUID
	if req.Items != nil {
		parsed, err := dto.ParseUUIDs(req.Items)
		if err != nil {
			badRequest(ctx, "Invalid item ID format", string(domainerror.ErrCodeMissingLaundryFields))
			return
		}
		items = parsed
	}

	input := laundry.UpdateLaundryInput{
		RecordID:      recordID,
		UserID:        userID,
		Items:         items,
		ScheduledDate: req.ScheduledDate,
	}
	if req.Status != nil {
		status := entity.LaundryStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLaundryResponse(output.Record))
}

// Delete handles DELETE /laundry/:id requests.
func (c *LaundryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := pathID(ctx, "laundry record")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), laundry.DeleteLaundryInput{
		RecordID: recordID,
		UserID:   userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
