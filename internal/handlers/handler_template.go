package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoxa/invoxa/internal/pdf"
)

type templateHandler struct {
	renderer *pdf.Renderer
}

// registerTemplateRoutes registers the invoice template catalog route.
func registerTemplateRoutes(rg *gin.RouterGroup, renderer *pdf.Renderer) {
	h := &templateHandler{renderer: renderer}
	rg.GET("/templates", h.listTemplates)
}

// listTemplates godoc
// @Summary List invoice templates
// @Description Lists all registered PDF templates in registration order, with their color palettes and preview image paths.
// @Tags templates
// @Produce json
// @Success 200 {array} pdf.Template
// @Router /templates [get]
func (h *templateHandler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.renderer.ListTemplates())
}
