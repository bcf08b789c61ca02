package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/usecase/report"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles financial statement endpoints.
type ReportController struct {
	profitLossUseCase      *report.GetProfitLossUseCase
	taxReportUseCase       *report.GetTaxReportUseCase
	cashFlowUseCase        *report.GetCashFlowUseCase
	incomeStatementUseCase *report.GetIncomeStatementUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	profitLossUseCase *report.GetProfitLossUseCase,
	taxReportUseCase *report.GetTaxReportUseCase,
	cashFlowUseCase *report.GetCashFlowUseCase,
	incomeStatementUseCase *report.GetIncomeStatementUseCase,
) *ReportController {
	return &ReportController{
		profitLossUseCase:      profitLossUseCase,
		taxReportUseCase:       taxReportUseCase,
		cashFlowUseCase:        cashFlowUseCase,
		incomeStatementUseCase: incomeStatementUseCase,
	}
}

// ProfitLoss handles GET /reports/profit-loss requests.
func (c *ReportController) ProfitLoss(ctx *gin.Context) {
	userID, propertyID, period, ok := c.parseScope(ctx)
	if !ok {
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), report.GetProfitLossInput{
		UserID:     userID,
		PropertyID: propertyID,
		Period:     period,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Tax handles GET /reports/tax requests.
func (c *ReportController) Tax(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, ok := c.parsePropertyID(ctx)
	if !ok {
		return
	}

	year := time.Now().Year()
	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidReportYear),
			})
			return
		}
		year = parsed
	}

	output, err := c.taxReportUseCase.Execute(ctx.Request.Context(), report.GetTaxReportInput{
		UserID:     userID,
		PropertyID: propertyID,
		Year:       year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CashFlow handles GET /reports/cash-flow requests.
func (c *ReportController) CashFlow(ctx *gin.Context) {
	userID, propertyID, period, ok := c.parseScope(ctx)
	if !ok {
		return
	}

	output, err := c.cashFlowUseCase.Execute(ctx.Request.Context(), report.GetCashFlowInput{
		UserID:     userID,
		PropertyID: propertyID,
		Period:     period,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// IncomeStatement handles GET /reports/income-statement requests.
func (c *ReportController) IncomeStatement(ctx *gin.Context) {
	userID, propertyID, period, ok := c.parseScope(ctx)
	if !ok {
		return
	}

	output, err := c.incomeStatementUseCase.Execute(ctx.Request.Context(), report.GetIncomeStatementInput{
		UserID:     userID,
		PropertyID: propertyID,
		Period:     period,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// parseScope extracts the authenticated user, optional property filter
// and optional reporting period from the request. A zero period is
// passed through; the use cases apply the year-to-date default.
func (c *ReportController) parseScope(ctx *gin.Context) (uuid.UUID, *uuid.UUID, valueobject.Period, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, nil, valueobject.Period{}, false
	}

	propertyID, ok := c.parsePropertyID(ctx)
	if !ok {
		return uuid.Nil, nil, valueobject.Period{}, false
	}

	var period valueobject.Period
	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			c.respondInvalidPeriod(ctx)
			return uuid.Nil, nil, valueobject.Period{}, false
		}
		period.Start = start
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			c.respondInvalidPeriod(ctx)
			return uuid.Nil, nil, valueobject.Period{}, false
		}
		period.End = end
	}

	return userID, propertyID, period, true
}

func (c *ReportController) parsePropertyID(ctx *gin.Context) (*uuid.UUID, bool) {
	propertyIDStr := ctx.Query("propertyId")
	if propertyIDStr == "" {
		return nil, true
	}

	id, err := uuid.Parse(propertyIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid property ID format",
		})
		return nil, false
	}
	return &id, true
}

func (c *ReportController) respondInvalidPeriod(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidReportPeriod),
	})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(c.getStatusCodeForReportError(rptErr.Code), dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeReportPropertyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidReportKind,
		domainerror.ErrCodeInvalidReportPeriod,
		domainerror.ErrCodeInvalidReportYear:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
