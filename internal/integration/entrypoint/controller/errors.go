package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the response for a use case error.
func handleError(ctx *gin.Context, err error) {
	var (
		authErr     *domainerror.AuthError
		wardrobeErr *domainerror.WardrobeError
		outfitErr   *domainerror.OutfitError
		laundryErr  *domainerror.LaundryError
		weatherErr  *domainerror.WeatherError
	)

	switch {
	case errors.As(err, &authErr):
		writeCodedError(ctx, getStatusCodeForAuthError(authErr.Code), authErr.Message, string(authErr.Code))
	case errors.As(err, &wardrobeErr):
		writeCodedError(ctx, getStatusCodeForWardrobeError(wardrobeErr.Code), wardrobeErr.Message, string(wardrobeErr.Code))
	case errors.As(err, &outfitErr):
		writeCodedError(ctx, getStatusCodeForOutfitError(outfitErr.Code), outfitErr.Message, string(outfitErr.Code))
	case errors.As(err, &laundryErr):
		writeCodedError(ctx, getStatusCodeForLaundryError(laundryErr.Code), laundryErr.Message, string(laundryErr.Code))
	case errors.As(err, &weatherErr):
		writeCodedError(ctx, getStatusCodeForWeatherError(weatherErr.Code), weatherErr.Message, string(weatherErr.Code))
	default:
		slog.Error("Unhandled request error",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func writeCodedError(ctx *gin.Context, status int, message, code string) {
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "code", code, "error", message)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForWardrobeError maps clothing and accessory error codes to HTTP status codes.
func getStatusCodeForWardrobeError(code domainerror.WardrobeErrorCode) int {
	switch code {
	case domainerror.ErrCodeClothingItemNotFound, domainerror.ErrCodeAccessoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedItem:
		return http.StatusForbidden
	case domainerror.ErrCodeImageTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeMissingItemFields,
		domainerror.ErrCodeInvalidClothingCategory,
		domainerror.ErrCodeInvalidItemStatus,
		domainerror.ErrCodeInvalidItemKind,
		domainerror.ErrCodeTooManyImages,
		domainerror.ErrCodeUnsupportedImageType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForOutfitError maps outfit error codes to HTTP status codes.
func getStatusCodeForOutfitError(code domainerror.OutfitErrorCode) int {
	switch code {
	case domainerror.ErrCodeOutfitNotFound,
		domainerror.ErrCodeOutfitUserNotFound,
		domainerror.ErrCodeOutfitWeatherMissing:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingOutfitFields,
		domainerror.ErrCodeLocationRequired,
		domainerror.ErrCodeOutfitItemNotFound,
		domainerror.ErrCodeInsufficientWardrobe:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForLaundryError maps laundry error codes to HTTP status codes.
func getStatusCodeForLaundryError(code domainerror.LaundryErrorCode) int {
	switch code {
	case domainerror.ErrCodeLaundryRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidLaundryStatus,
		domainerror.ErrCodeEmptyLaundry,
		domainerror.ErrCodeLaundryItemNotFound,
		domainerror.ErrCodeMissingLaundryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForWeatherError maps weather error codes to HTTP status codes.
func getStatusCodeForWeatherError(code domainerror.WeatherErrorCode) int {
	switch code {
	case domainerror.ErrCodeWeatherNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingWeatherFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// requireUser returns the authenticated user or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id route parameter or writes a 400.
func pathID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(ctx *gin.Context, message string, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
