package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentfolio/backend/internal/application/usecase/usage"
	"github.com/rentfolio/backend/internal/integration/entrypoint/dto"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// UsageController handles subscription usage endpoints.
type UsageController struct {
	checkLimitsUseCase *usage.CheckLimitsUseCase
}

// NewUsageController creates a new usage controller instance.
func NewUsageController(checkLimitsUseCase *usage.CheckLimitsUseCase) *UsageController {
	return &UsageController{
		checkLimitsUseCase: checkLimitsUseCase,
	}
}

// Limits handles GET /usage/limits requests. The decision is computed
// fresh on every call; clients must not cache it.
func (c *UsageController) Limits(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}
	plan, _ := middleware.GetUserPlanFromContext(ctx)

	output, err := c.checkLimitsUseCase.Execute(ctx.Request.Context(), usage.CheckLimitsInput{
		UserID: userID,
		Plan:   plan,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to evaluate usage limits",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}
