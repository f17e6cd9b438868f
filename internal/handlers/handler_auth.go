package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
	"github.com/invoxa/invoxa/internal/dto"
	"github.com/invoxa/invoxa/internal/middleware"
	"github.com/invoxa/invoxa/internal/platform/config"
)

// AuthHandler handles authentication related requests. Sessions are carried
// in an HTTP-only cookie; a bearer header works as a fallback for API
// clients.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cookieName   string
	cookiePath   string
	cookieMaxAge int
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cookieName:   cfg.AuthCookieName,
		cookiePath:   cfg.AuthCookiePath,
		cookieMaxAge: int(cfg.JWTExpiryDuration / time.Second),
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// Credential endpoints get a tight per-IP limit.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := limitermemory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/logout", h.Logout)
	}

	me := r.Group("/api/v1/auth", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AuthCookieName))
	{
		me.GET("/me", h.Me)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	if err := h.startSession(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	if err := h.startSession(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Logout godoc
// @Summary User logout
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, h.cookiePath, "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary Current user
// @Description Returns the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to load current user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// startSession issues a session token for the user and attaches it as an
// HTTP-only cookie.
func (h *AuthHandler) startSession(c *gin.Context, user *domain.User) error {
	token, err := h.tokenService.GenerateSessionToken(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, h.cookiePath, "", h.secureCookie, true)
	return nil
}
