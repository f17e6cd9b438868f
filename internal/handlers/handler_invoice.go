package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/middleware"
	"github.com/invoxa/invoxa/internal/pdf"
)

// invoiceHandler handles HTTP requests related to invoices, including PDF
// rendering.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	clientService  portssvc.ClientSvcFacade
	companyService portssvc.CompanySvcFacade
	renderer       *pdf.Renderer
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, clientService portssvc.ClientSvcFacade, companyService portssvc.CompanySvcFacade, renderer *pdf.Renderer) {
	h := &invoiceHandler{
		invoiceService: invoiceService,
		clientService:  clientService,
		companyService: companyService,
		renderer:       renderer,
	}

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.PATCH("/:id/status", h.updateInvoiceStatus)
		invoices.DELETE("/:id", h.deleteInvoice)
		invoices.GET("/:id/pdf", h.downloadInvoicePDF)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists the user's invoices with optional status filter, search and pagination.
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, PAID, OVERDUE, CANCELLED)
// @Param search query string false "Match against invoice number, client name or client email"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 400 {object} ErrorResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter := portsrepo.InvoiceListFilter{
		Status: domain.InvoiceStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	page := portsrepo.Pagination{
		Page:  atoiOrDefault(c.Query("page"), 1),
		Limit: atoiOrDefault(c.Query("limit"), 10),
	}

	rows, total, err := h.invoiceService.ListInvoices(c.Request.Context(), userID, filter, page)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	// Echo the normalized window back, mirroring what the service applied.
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = 10
	}
	if page.Limit > 100 {
		page.Limit = 100
	}

	c.JSON(http.StatusOK, dto.ToInvoiceListResponse(rows, page, total))
}

// createInvoice godoc
// @Summary Create invoice
// @Description Creates an invoice; totals are computed server-side.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoice godoc
// @Summary Get invoice
// @Description Retrieves one invoice with its items.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// updateInvoiceStatus godoc
// @Summary Update invoice status
// @Description Moves an invoice to a new lifecycle state.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update invoice status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update invoice"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteInvoice godoc
// @Summary Delete invoice
// @Description Deletes an invoice and its items.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.invoiceService.DeleteInvoice(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete invoice"})
		return
	}

	c.Status(http.StatusNoContent)
}

// downloadInvoicePDF godoc
// @Summary Download invoice PDF
// @Description Renders the invoice through its template and streams the PDF document.
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Param template query string false "Override the invoice's template id"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Template failed to load"
// @Router /invoices/{id}/pdf [get]
func (h *invoiceHandler) downloadInvoicePDF(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice for rendering", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get invoice"})
		return
	}

	data, err := h.buildInvoiceData(c, userID, invoice)
	if err != nil {
		logger.Error("Failed to assemble invoice data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render invoice"})
		return
	}

	templateID := c.Query("template")
	if templateID == "" {
		templateID = invoice.TemplateID
	}

	document, err := h.renderer.Render(c.Request.Context(), templateID, data)
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Template failed to load"})
		return
	}

	filename := fmt.Sprintf("%s.pdf", invoice.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", document)
}

// buildInvoiceData assembles the rendering projection from the invoice, its
// client and the issuing company profile. A missing company profile renders
// with an empty issuer block rather than failing.
func (h *invoiceHandler) buildInvoiceData(c *gin.Context, userID string, invoice *domain.Invoice) (pdf.InvoiceData, error) {
	ctx := c.Request.Context()

	client, err := h.clientService.GetClientByID(ctx, userID, invoice.ClientID)
	if err != nil {
		return pdf.InvoiceData{}, err
	}

	var companyParty pdf.PartyInfo
	company, err := h.companyService.GetCompanyByUser(ctx, userID)
	switch {
	case err == nil:
		companyParty = pdf.PartyInfo{
			Name:    company.Name,
			Email:   company.Email,
			Phone:   company.Phone,
			Address: company.Address,
			Website: company.Website,
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// keep the empty issuer block
	default:
		return pdf.InvoiceData{}, err
	}

	items := make([]pdf.LineItem, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = pdf.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity.InexactFloat64(),
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Amount:      item.Amount.InexactFloat64(),
		}
	}

	return pdf.InvoiceData{
		Number:    invoice.Number,
		IssueDate: invoice.IssueDate,
		DueDate:   invoice.DueDate,
		Currency:  invoice.Currency,
		Company:   companyParty,
		Client: pdf.PartyInfo{
			Name:    client.Name,
			Email:   client.Email,
			Phone:   client.Phone,
			Address: client.Address,
		},
		Items:     items,
		Subtotal:  invoice.Subtotal.InexactFloat64(),
		TaxRate:   invoice.TaxRate.InexactFloat64(),
		TaxAmount: invoice.TaxAmount.InexactFloat64(),
		Total:     invoice.Total.InexactFloat64(),
		Notes:     invoice.Notes,
	}, nil
}

// atoiOrDefault parses s as a positive integer, falling back on def.
func atoiOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
