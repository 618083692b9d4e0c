package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200      {object}   response.HealthResponse
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.HealthResponse{
		Success:   true,
		Message:   "Zunde check-in API is running",
		Timestamp: time.Now().UTC(),
	})
}
