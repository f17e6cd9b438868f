package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/middleware"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// registerDashboardRoutes registers the dashboard reporting route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get dashboard report
// @Description Returns monthly revenue and activity metrics in the user's reporting currency plus the five most recent invoices.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build dashboard report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(report))
}
