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

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := &clientHandler{clientService: clientService}

	clients := rg.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.POST("", h.createClient)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// listClients godoc
// @Summary List clients
// @Description Lists all clients owned by the authenticated user, newest first.
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientListResponse(clients))
}

// createClient godoc
// @Summary Create client
// @Description Creates a new client for the authenticated user.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), userID, req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// getClient godoc
// @Summary Get client
// @Description Retrieves one client owned by the authenticated user.
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update client
// @Description Updates a client owned by the authenticated user.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Client details"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to update client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete client
// @Description Deletes a client; fails while invoices still reference it.
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Client still has invoices"
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.clientService.DeleteClient(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Client still has invoices"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to delete client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete client"})
		return
	}

	c.Status(http.StatusNoContent)
}
