package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/usecase/analytics"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles portfolio analytics endpoints.
type AnalyticsController struct {
	overviewUseCase    *analytics.GetOverviewUseCase
	trendsUseCase      *analytics.GetTrendsUseCase
	performanceUseCase *analytics.GetPerformanceUseCase
	snapshotsUseCase   *analytics.ListSnapshotsUseCase
	analysesUseCase    *analytics.ListAnalysesUseCase
	generateUseCase    *analytics.GenerateAnalysisUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	overviewUseCase *analytics.GetOverviewUseCase,
	trendsUseCase *analytics.GetTrendsUseCase,
	performanceUseCase *analytics.GetPerformanceUseCase,
	snapshotsUseCase *analytics.ListSnapshotsUseCase,
	analysesUseCase *analytics.ListAnalysesUseCase,
	generateUseCase *analytics.GenerateAnalysisUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		overviewUseCase:    overviewUseCase,
		trendsUseCase:      trendsUseCase,
		performanceUseCase: performanceUseCase,
		snapshotsUseCase:   snapshotsUseCase,
		analysesUseCase:    analysesUseCase,
		generateUseCase:    generateUseCase,
	}
}

// Overview handles GET /analytics/overview requests.
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), analytics.GetOverviewInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Trends handles GET /analytics/trends requests.
func (c *AnalyticsController) Trends(ctx *gin.Context) {
	userID, propertyID, window, ok := c.parseWindowScope(ctx)
	if !ok {
		return
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), analytics.GetTrendsInput{
		UserID:     userID,
		PropertyID: propertyID,
		Window:     window,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Performance handles GET /analytics/performance requests.
func (c *AnalyticsController) Performance(ctx *gin.Context) {
	userID, propertyID, window, ok := c.parseWindowScope(ctx)
	if !ok {
		return
	}

	output, err := c.performanceUseCase.Execute(ctx.Request.Context(), analytics.GetPerformanceInput{
		UserID:     userID,
		PropertyID: propertyID,
		Window:     window,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Snapshots handles GET /analytics/snapshots requests.
func (c *AnalyticsController) Snapshots(ctx *gin.Context) {
	userID, propertyID, window, ok := c.parseWindowScope(ctx)
	if !ok {
		return
	}

	output, err := c.snapshotsUseCase.Execute(ctx.Request.Context(), analytics.ListSnapshotsInput{
		UserID:     userID,
		PropertyID: propertyID,
		Window:     window,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Analyses handles GET /analytics/analyses requests.
func (c *AnalyticsController) Analyses(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.analysesUseCase.Execute(ctx.Request.Context(), analytics.ListAnalysesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// GenerateAnalysis handles POST /analytics/analyses requests.
func (c *AnalyticsController) GenerateAnalysis(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), analytics.GenerateAnalysisInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output)
}

// parseWindowScope extracts the authenticated user, optional property
// filter and trailing window from the request.
func (c *AnalyticsController) parseWindowScope(ctx *gin.Context) (uuid.UUID, *uuid.UUID, analytics.Window, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, nil, "", false
	}

	var propertyID *uuid.UUID
	if propertyIDStr := ctx.Query("propertyId"); propertyIDStr != "" {
		id, err := uuid.Parse(propertyIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid property ID format",
			})
			return uuid.Nil, nil, "", false
		}
		propertyID = &id
	}

	window, err := analytics.ParseWindow(ctx.Query("window"))
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return uuid.Nil, nil, "", false
	}

	return userID, propertyID, window, true
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		ctx.JSON(c.getStatusCodeForAnalyticsError(anlErr.Code), dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAnalyticsError maps analytics error codes to HTTP status codes.
func (c *AnalyticsController) getStatusCodeForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeAnalyticsPropertyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTrendWindow,
		domainerror.ErrCodeInvalidMetricType:
		return http.StatusBadRequest
	case domainerror.ErrCodeAIServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
