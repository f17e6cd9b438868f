package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invoxa/invoxa/internal/core/domain"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/platform/config"
)

type currencyHandler struct {
	registry  portssvc.CurrencyRegistrySvc
	converter portssvc.CurrencyConverterSvc
}

// registerCurrencyRoutes registers the currency registry and conversion
// routes. Conversion routes call out to the external rates provider, so they
// sit behind the per-IP rate limiter.
func registerCurrencyRoutes(rg *gin.RouterGroup, cfg *config.Config, registry portssvc.CurrencyRegistrySvc, converter portssvc.CurrencyConverterSvc) {
	h := &currencyHandler{registry: registry, converter: converter}

	rg.GET("/currencies", h.listCurrencies)

	convert := rg.Group("/currency/convert", convertRateLimiter(cfg))
	{
		convert.GET("", h.convertQuery)
		convert.POST("", h.convert)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Lists all supported currencies as selector options, in registry order.
// @Tags currencies
// @Produce json
// @Success 200 {array} services.CurrencyOption
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.CurrencyOptions())
}

// convert godoc
// @Summary Convert amounts between currencies
// @Description Converts a single amount (amount/fromCurrency/toCurrency) or a batch of amounts (amounts/toCurrency) into the target currency.
// @Tags currencies
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConvertResponse "Single conversion result"
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Router /currency/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if len(req.Amounts) > 0 {
		amounts := make([]domain.MonetaryAmount, len(req.Amounts))
		for i, item := range req.Amounts {
			amounts[i] = domain.MonetaryAmount{Amount: item.Amount, Currency: item.Currency}
		}
		total := h.converter.ConvertMultipleCurrencies(c.Request.Context(), amounts, req.ToCurrency)
		c.JSON(http.StatusOK, dto.BatchConvertResponse{
			Amounts:        amounts,
			ToCurrency:     req.ToCurrency,
			TotalConverted: total,
			Timestamp:      time.Now().UTC(),
		})
		return
	}

	if req.Amount == nil || req.FromCurrency == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Either amount/fromCurrency or amounts must be provided"})
		return
	}

	c.JSON(http.StatusOK, h.convertSingle(c, *req.Amount, req.FromCurrency, req.ToCurrency))
}

// convertQuery godoc
// @Summary Convert a single amount between currencies
// @Description Query-parameter variant of the conversion endpoint for simple GET use.
// @Tags currencies
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Router /currency/convert [get]
func (h *currencyHandler) convertQuery(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if !h.registry.ValidateCurrencyCode(from) || !h.registry.ValidateCurrencyCode(to) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid currency code"})
		return
	}

	c.JSON(http.StatusOK, h.convertSingle(c, amount, from, to))
}

func (h *currencyHandler) convertSingle(c *gin.Context, amount float64, from, to string) dto.ConvertResponse {
	converted := h.converter.ConvertCurrency(c.Request.Context(), amount, from, to)
	return dto.ConvertResponse{
		OriginalAmount:  amount,
		FromCurrency:    from,
		ToCurrency:      to,
		ConvertedAmount: converted,
		Timestamp:       time.Now().UTC(),
	}
}
