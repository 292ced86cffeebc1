package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gerai/catalog-api/internal/utils"
)

// Cookie names shared with the auth handler.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// AccessTokenValidator verifies access tokens.
type AccessTokenValidator interface {
	ValidateAccessToken(token string) (*utils.TokenClaims, error)
}

// JWTMiddleware authenticates requests via the access token cookie.
type JWTMiddleware struct {
	validator AccessTokenValidator
}

// NewJWTMiddleware constructs a JWTMiddleware.
func NewJWTMiddleware(validator AccessTokenValidator) *JWTMiddleware {
	return &JWTMiddleware{validator: validator}
}

// Handle returns a Gin middleware that rejects requests without a valid
// access token cookie and stores the caller identity in the context.
func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			utils.Error(c, 401, "Missing access token")
			c.Abort()
			return
		}

		claims, err := m.validator.ValidateAccessToken(token)
		if err != nil {
			utils.Error(c, 401, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Next()
	}
}
