package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/invoxa/invoxa/cmd/docs"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/middleware"
	"github.com/invoxa/invoxa/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCurrencyCodeValidator(services.Currency)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AuthCookieName))

	registerClientRoutes(v1, services.Client)
	registerCompanyRoutes(v1, services.Company)
	registerInvoiceRoutes(v1, services.Invoice, services.Client, services.Company, services.Renderer)
	registerDashboardRoutes(v1, services.Dashboard)
	registerTemplateRoutes(v1, services.Renderer)
	registerCurrencyRoutes(v1, cfg, services.Currency, services.Converter)
}

// registerCurrencyCodeValidator installs the `currencycode` binding tag so
// request DTOs validate currency fields against the supported registry.
func registerCurrencyCodeValidator(registry portssvc.CurrencyRegistrySvc) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return registry.ValidateCurrencyCode(fl.Field().String())
		})
	}
}

// convertRateLimiter builds the IP rate limiter guarding the conversion
// endpoints, which fan out to an external rates API.
func convertRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.ConvertRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	store := limitermemory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
