package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/owner-portal/backend/internal/application/usecase/dashboard"
	domainerror "github.com/owner-portal/backend/internal/domain/error"
	"github.com/owner-portal/backend/internal/integration/entrypoint/dto"
	"github.com/owner-portal/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the owner dashboard endpoints.
type DashboardController struct {
	listPropertiesUseCase   *dashboard.ListPropertiesUseCase
	getForecastUseCase      *dashboard.GetForecastUseCase
	getPerformanceUseCase   *dashboard.GetPerformanceUseCase
	getOccupancyUseCase     *dashboard.GetOccupancyUseCase
	getProjectionUseCase    *dashboard.GetProjectionUseCase
	simulateForecastUseCase *dashboard.SimulateForecastUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	listPropertiesUseCase *dashboard.ListPropertiesUseCase,
	getForecastUseCase *dashboard.GetForecastUseCase,
	getPerformanceUseCase *dashboard.GetPerformanceUseCase,
	getOccupancyUseCase *dashboard.GetOccupancyUseCase,
	getProjectionUseCase *dashboard.GetProjectionUseCase,
	simulateForecastUseCase *dashboard.SimulateForecastUseCase,
) *DashboardController {
	return &DashboardController{
		listPropertiesUseCase:   listPropertiesUseCase,
		getForecastUseCase:      getForecastUseCase,
		getPerformanceUseCase:   getPerformanceUseCase,
		getOccupancyUseCase:     getOccupancyUseCase,
		getProjectionUseCase:    getProjectionUseCase,
		simulateForecastUseCase: simulateForecastUseCase,
	}
}

// ListProperties handles GET /properties requests.
func (c *DashboardController) ListProperties(ctx *gin.Context) {
	ownerID, ok := c.requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.listPropertiesUseCase.Execute(ctx.Request.Context(), dashboard.ListPropertiesInput{
		OwnerID: ownerID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(output.Properties))
}

// GetForecast handles GET /properties/:id/forecast requests.
// The optional horizons query is a comma-separated list of day counts.
// Every property endpoint accepts refresh=true to skip the snapshot cache.
func (c *DashboardController) GetForecast(ctx *gin.Context) {
	ownerID, ok := c.requireOwner(ctx)
	if !ok {
		return
	}

	propertyID, ok := c.parsePropertyID(ctx)
	if !ok {
		return
	}

	horizons, err := parseIntList(ctx.Query("horizons"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "horizons must be a comma-separated list of day counts",
			Code:  string(domainerror.ErrCodeInvalidHorizon),
		})
		return
	}

	output, err := c.getForecastUseCase.Execute(ctx.Request.Context(), dashboard.GetForecastInput{
		OwnerID:    ownerID,
		PropertyID: propertyID,
		Horizons:   horizons,
		Refresh:    wantsRefresh(ctx),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastResponse(output))
}

// GetPerformance handles GET /properties/:id/performance requests.
func (c *DashboardController) GetPerformance(ctx *gin.Context) {
	ownerID, ok := c.requireOwner(ctx)
	if !ok {
		return
	}

	propertyID, ok := c.parsePropertyID(ctx)
	if !ok {
		return
	}

	output, err := c.getPerformanceUseCase.Execute(ctx.Request.Context(), dashboard.GetPerformanceInput{
		OwnerID:    ownerID,
		PropertyID: propertyID,
		Refresh:    wantsRefresh(ctx),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPerformanceResponse(output))
}

// GetOccupancy handles GET /properties/:id/occupancy requests.
func (c *DashboardController) GetOccupancy(ctx *gin.Context) {
	ownerID, ok := c.requireOwner(ctx)
	if !ok {
		return
	}

	propertyID, ok := c.parsePropertyID(ctx)
	if !ok {
		return
	}

	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return
	}

	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.getOccupancyUseCase.Execute(ctx.Request.Context(), dashboard.GetOccupancyInput{
		OwnerID:    ownerID,
		PropertyID: propertyID,
		StartDate:  startDate,
		EndDate:    endDate,
		Refresh:    wantsRefresh(ctx),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOccupancyResponse(output))
}

// GetProjection handles GET /properties/:id/projection requests.
func (c *DashboardController) GetProjection(ctx *gin.Context) {
	ownerID, ok := c.requireOwner(ctx)
	if !ok {
		return
	}

	propertyID, ok := c.parsePropertyID(ctx)
	if !ok {
		return
	}

	months := 0
	if raw := ctx.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be a positive number",
				Code:  string(domainerror.ErrCodeInvalidMonthCount),
			})
			return
		}
		months = parsed
	}

	output, err := c.getProjectionUseCase.Execute(ctx.Request.Context(), dashboard.GetProjectionInput{
		OwnerID:    ownerID,
		PropertyID: propertyID,
		Months:     months,
		Refresh:    wantsRefresh(ctx),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(output))
}

// SimulateForecast handles POST /forecast/simulate requests.
func (c *DashboardController) SimulateForecast(ctx *gin.Context) {
	if _, ok := c.requireOwner(ctx); !ok {
		return
	}

	var req dto.SimulateForecastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidSimulationPayload),
			Details: err.Error(),
		})
		return
	}

	output, err := c.simulateForecastUseCase.Execute(ctx.Request.Context(), req.ToSimulateForecastInput())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulateForecastResponse(output))
}

func (c *DashboardController) requireOwner(ctx *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := middleware.GetOwnerIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Owner not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return ownerID, true
}

// wantsRefresh reports whether the caller asked to read past the snapshot cache.
func wantsRefresh(ctx *gin.Context) bool {
	refresh, _ := strconv.ParseBool(ctx.Query("refresh"))
	return refresh
}

func (c *DashboardController) parsePropertyID(ctx *gin.Context) (uuid.UUID, bool) {
	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid property ID format",
			Code:  string(domainerror.ErrCodeInvalidPropertyID),
		})
		return uuid.Nil, false
	}
	return propertyID, true
}

// handleDashboardError handles domain errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var forecastErr *domainerror.ForecastError
	if errors.As(err, &forecastErr) {
		ctx.JSON(getStatusCodeForForecastError(forecastErr.Code), dto.ErrorResponse{
			Error: forecastErr.Message,
			Code:  string(forecastErr.Code),
		})
		return
	}

	var propertyErr *domainerror.PropertyError
	if errors.As(err, &propertyErr) {
		ctx.JSON(getStatusCodeForPropertyError(propertyErr.Code), dto.ErrorResponse{
			Error: propertyErr.Message,
			Code:  string(propertyErr.Code),
		})
		return
	}

	slog.Error("Dashboard request failed",
		"path", ctx.FullPath(),
		"error", err,
	)

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForForecastError maps forecast error codes to HTTP status codes.
func getStatusCodeForForecastError(code domainerror.ForecastErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidHorizon,
		domainerror.ErrCodeInvalidMonthCount,
		domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidSimulationPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForPropertyError maps property error codes to HTTP status codes.
func getStatusCodeForPropertyError(code domainerror.PropertyErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPropertyID:
		return http.StatusBadRequest
	case domainerror.ErrCodePropertyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePropertyAccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseIntList parses "30,60,90". An empty string yields nil.
func parseIntList(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
