package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoxa/invoxa/internal/apperrors"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/middleware"
)

// companyHandler handles HTTP requests for the per-user company profile.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// registerCompanyRoutes registers routes related to the company profile.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := &companyHandler{companyService: companyService}

	company := rg.Group("/company")
	{
		company.GET("", h.getCompany)
		company.PUT("", h.upsertCompany)
	}
}

// getCompany godoc
// @Summary Get company profile
// @Description Retrieves the authenticated user's company profile.
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} ErrorResponse
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	company, err := h.companyService.GetCompanyByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Company profile not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get company", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get company"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// upsertCompany godoc
// @Summary Create or replace company profile
// @Description Creates the authenticated user's company profile or replaces the existing one.
// @Tags company
// @Accept json
// @Produce json
// @Param company body dto.UpsertCompanyRequest true "Company details"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Router /company [put]
func (h *companyHandler) upsertCompany(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpsertCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	company, err := h.companyService.UpsertCompany(c.Request.Context(), userID, req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to upsert company", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save company"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
