package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gerai/catalog-api/internal/config"
	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/middleware"
	"github.com/gerai/catalog-api/internal/models"
	"github.com/gerai/catalog-api/internal/service"
	"github.com/gerai/catalog-api/internal/utils"
)

// AuthProvider is the auth service surface the handler needs.
type AuthProvider interface {
	Register(email, fullName, password string) (*models.User, error)
	ValidateCredentials(email, password string) (*models.User, error)
	Login(user *models.User) (*service.TokenPair, error)
	RefreshTokens(user *models.User) (string, error)
	ValidateRefreshToken(token string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}

// AuthHandler handles registration, login, and the cookie token lifecycle.
type AuthHandler struct {
	authService AuthProvider
	jwt         config.JWTConfig
	secure      bool
}

// NewAuthHandler constructs an AuthHandler. Cookies carry the Secure flag
// only in production so local development over http keeps working.
func NewAuthHandler(authService AuthProvider, jwt config.JWTConfig, env string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwt:         jwt,
		secure:      env == "production",
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Fail(c, err)
		return
	}

	user, err := h.authService.Register(req.Email, req.FullName, req.Password)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Fail(c, err)
		return
	}

	user, err := h.authService.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if user == nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tokens, err := h.authService.Login(user)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	h.setCookie(c, middleware.AccessTokenCookie, tokens.AccessToken, int(h.jwt.AccessTTL.Seconds()))
	h.setCookie(c, middleware.RefreshTokenCookie, tokens.RefreshToken, int(h.jwt.RefreshTTL.Seconds()))

	utils.Success(c, http.StatusOK, "Login successful", user)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authService.FindByID(userID)
	if err != nil {
		// A valid token over a deleted account is still unauthorized.
		utils.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.Success(c, http.StatusOK, "Profile retrieved successfully", user)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || token == "" {
		utils.Error(c, http.StatusUnauthorized, "Missing refresh token")
		return
	}

	user, err := h.authService.ValidateRefreshToken(token)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	access, err := h.authService.RefreshTokens(user)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	h.setCookie(c, middleware.AccessTokenCookie, access, int(h.jwt.AccessTTL.Seconds()))

	utils.Success(c, http.StatusOK, "Token refreshed successfully", nil)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, middleware.RefreshTokenCookie, "", -1)

	utils.Success(c, http.StatusOK, "Logout successful", nil)
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secure, true)
}
