package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/usecase/property"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// PropertyController handles property endpoints.
type PropertyController struct {
	createUseCase *property.CreatePropertyUseCase
	listUseCase   *property.ListPropertiesUseCase
	getUseCase    *property.GetPropertyUseCase
	updateUseCase *property.UpdatePropertyUseCase
	deleteUseCase *property.DeletePropertyUseCase
}

// NewPropertyController creates a new property controller instance.
func NewPropertyController(
	createUseCase *property.CreatePropertyUseCase,
	listUseCase *property.ListPropertiesUseCase,
	getUseCase *property.GetPropertyUseCase,
	updateUseCase *property.UpdatePropertyUseCase,
	deleteUseCase *property.DeletePropertyUseCase,
) *PropertyController {
	return &PropertyController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /properties requests.
func (c *PropertyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}
	plan, _ := middleware.GetUserPlanFromContext(ctx)

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), property.CreatePropertyInput{
		UserID:         userID,
		Plan:           plan,
		Name:           req.Name,
		Address:        req.Address,
		Type:           entity.PropertyType(req.Type),
		PurchasePrice:  req.PurchasePrice,
		EstimatedValue: req.EstimatedValue,
		MonthlyRent:    req.MonthlyRent,
		Units:          req.Units,
		OccupiedUnits:  req.OccupiedUnits,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPropertyResponse(output.Property))
}

// List handles GET /properties requests.
func (c *PropertyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), property.ListPropertiesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve properties",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyListResponse(output.Properties))
}

// Get handles GET /properties/:id requests.
func (c *PropertyController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid property ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), property.GetPropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	})
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// Update handles PATCH /properties/:id requests.
func (c *PropertyController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid property ID format",
		})
		return
	}

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := property.UpdatePropertyInput{
		UserID:         userID,
		PropertyID:     propertyID,
		Name:           req.Name,
		Address:        req.Address,
		PurchasePrice:  req.PurchasePrice,
		EstimatedValue: req.EstimatedValue,
		MonthlyRent:    req.MonthlyRent,
		Units:          req.Units,
		OccupiedUnits:  req.OccupiedUnits,
	}
	if req.Type != nil {
		propertyType := entity.PropertyType(*req.Type)
		input.Type = &propertyType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPropertyResponse(output.Property))
}

// Delete handles DELETE /properties/:id requests.
func (c *PropertyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	propertyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid property ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), property.DeletePropertyInput{
		UserID:     userID,
		PropertyID: propertyID,
	}); err != nil {
		c.handlePropertyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Property deleted"})
}

// handlePropertyError handles property errors and returns appropriate HTTP responses.
func (c *PropertyController) handlePropertyError(ctx *gin.Context, err error) {
	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		ctx.JSON(c.getStatusCodeForPropertyError(propErr.Code), dto.ErrorResponse{
			Error: propErr.Message,
			Code:  string(propErr.Code),
		})
		return
	}

	var usageErr *domainerror.UsageError
	if errors.As(err, &usageErr) {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: usageErr.Message,
			Code:  string(usageErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPropertyError maps property error codes to HTTP status codes.
func (c *PropertyController) getStatusCodeForPropertyError(code domainerror.PropertyErrorCode) int {
	switch code {
	case domainerror.ErrCodePropertyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedProperty:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingPropertyName,
		domainerror.ErrCodeInvalidPropertyUnits,
		domainerror.ErrCodeInvalidPurchasePrice:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the standard missing-identity response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
