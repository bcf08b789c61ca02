package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/usecase/document"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// DocumentController handles document metadata endpoints.
type DocumentController struct {
	registerUseCase *document.RegisterDocumentUseCase
	listUseCase     *document.ListDocumentsUseCase
}

// NewDocumentController creates a new document controller instance.
func NewDocumentController(
	registerUseCase *document.RegisterDocumentUseCase,
	listUseCase *document.ListDocumentsUseCase,
) *DocumentController {
	return &DocumentController{
		registerUseCase: registerUseCase,
		listUseCase:     listUseCase,
	}
}

// Register handles POST /documents requests.
func (c *DocumentController) Register(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}
	plan, _ := middleware.GetUserPlanFromContext(ctx)

	var req dto.RegisterDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	var propertyID *uuid.UUID
	if req.PropertyID != nil && *req.PropertyID != "" {
		id, err := uuid.Parse(*req.PropertyID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid property ID format",
			})
			return
		}
		propertyID = &id
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), document.RegisterDocumentInput{
		UserID:      userID,
		Plan:        plan,
		PropertyID:  propertyID,
		Name:        req.Name,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		c.handleDocumentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDocumentResponse(output.Document))
}

// List handles GET /documents requests.
func (c *DocumentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), document.ListDocumentsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve documents",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDocumentListResponse(output.Documents))
}

// handleDocumentError handles document errors and returns appropriate HTTP responses.
func (c *DocumentController) handleDocumentError(ctx *gin.Context, err error) {
	var docErr *domainerror.DocumentError
	if errors.As(err, &docErr) {
		ctx.JSON(c.getStatusCodeForDocumentError(docErr.Code), dto.ErrorResponse{
			Error: docErr.Message,
			Code:  string(docErr.Code),
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

// getStatusCodeForDocumentError maps document error codes to HTTP status codes.
func (c *DocumentController) getStatusCodeForDocumentError(code domainerror.DocumentErrorCode) int {
	switch code {
	case domainerror.ErrCodeDocumentNotFound,
		domainerror.ErrCodeDocPropertyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingDocumentName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
