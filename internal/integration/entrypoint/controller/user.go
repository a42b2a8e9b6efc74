package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardrobe-manager/backend/internal/application/usecase/auth"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
)

// UserController handles profile endpoints for the authenticated user.
type UserController struct {
	updateProfileUseCase *auth.UpdateProfileUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(updateProfileUseCase *auth.UpdateProfileUseCase) *UserController {
	return &UserController{
		updateProfileUseCase: updateProfileUseCase,
	}
}

// UpdateProfile handles PATCH /users/me requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), auth.UpdateProfileInput{
		UserID:           userID,
		Name:             req.Name,
		Location:         req.Location,
		StylePreferences: req.StylePreferences,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
