package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wardrobe-manager/backend/internal/application/usecase/weather"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/integration/entrypoint/dto"
)

// WeatherController handles weather sample endpoints.
type WeatherController struct {
	recordUseCase *weather.RecordWeatherUseCase
	latestUseCase *weather.GetLatestWeatherUseCase
}

// NewWeatherController creates a new weather controller instance.
func NewWeatherController(
	recordUseCase *weather.RecordWeatherUseCase,
	latestUseCase *weather.GetLatestWeatherUseCase,
) *WeatherController {
	return &WeatherController{
		recordUseCase: recordUseCase,
		latestUseCase: latestUseCase,
	}
}

// Record handles POST /weather requests.
func (c *WeatherController) Record(ctx *gin.Context) {
	var req dto.RecordWeatherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingWeatherFields))
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), weather.RecordWeatherInput{
		Location:    req.Location,
		Conditions:  req.Conditions,
		Temperature: req.Temperature,
		Date:        req.Date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWeatherResponse(output.Sample))
}

// Latest handles GET /weather/latest?location= requests.
func (c *WeatherController) Latest(ctx *gin.Context) {
	output, err := c.latestUseCase.Execute(ctx.Request.Context(), weather.GetLatestWeatherInput{
		Location: ctx.Query("location"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LatestWeatherResponse{
		WeatherResponse: dto.ToWeatherResponse(output.Sample),
		Season:          string(output.Season),
	})
}
