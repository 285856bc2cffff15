package middleware

import (
	"errors"
	"strings"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by the auth middleware.
const (
	ContextClaims      = "claims"
	ContextCurrentUser = "current_user"
)

func abortWith(c *gin.Context, err *apierr.Error) {
	c.AbortWithStatusJSON(err.Status, err.Envelope())
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth enforces a valid, unexpired access token. The decoded
// claims become the caller context for the wrapped handlers.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortWith(c, apierr.Authentication("Authorization required"))
			return
		}

		claims, err := tokens.Verify(token, services.TokenAccess)
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				abortWith(c, apierr.Authentication("Token has expired"))
			} else {
				abortWith(c, apierr.Authentication("Invalid token"))
			}
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// OptionalAuth decodes a token when one is present but never blocks the
// request. Public handlers can use the claims as optional context.
func OptionalAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tokens.Verify(token, services.TokenAccess); err == nil {
				c.Set(ContextClaims, claims)
			}
		}
		c.Next()
	}
}

// Authorize checks the request's claims against the store. The admin
// account is re-resolved on every call, so a still-valid token stops
// granting access the moment the account is deactivated, deleted, or
// demoted. Do not cache this lookup. Handlers that gate only some
// requests (for example a status filter on an otherwise public list)
// call this directly; route-level gating goes through RequireRole.
func Authorize(c *gin.Context, roles ...models.AdminRole) (*models.AdminUser, *apierr.Error) {
	claims := ClaimsFrom(c)
	if claims == nil {
		return nil, apierr.Authentication("Authorization required")
	}

	adminID, err := claims.AdminID()
	if err != nil {
		return nil, apierr.Authentication("Invalid token")
	}

	var user models.AdminUser
	if err := models.DB.First(&user, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Authentication("User not found or inactive")
		}
		return nil, apierr.Database("")
	}

	if !user.IsActive {
		return nil, apierr.Authentication("User not found or inactive")
	}

	if !user.HasRole(roles...) {
		return nil, apierr.Authorization("Insufficient permissions")
	}

	return &user, nil
}

// RequireRole gates a handler on role membership via Authorize.
func RequireRole(roles ...models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, aerr := Authorize(c, roles...)
		if aerr != nil {
			abortWith(c, aerr)
			return
		}

		c.Set(ContextCurrentUser, user)
		c.Next()
	}
}

// ClaimsFrom returns the decoded token claims, or nil when the request
// was not authenticated.
func ClaimsFrom(c *gin.Context) *services.Claims {
	if v, ok := c.Get(ContextClaims); ok {
		if claims, ok := v.(*services.Claims); ok {
			return claims
		}
	}
	return nil
}

// CurrentUserFrom returns the re-resolved admin account set by
// RequireRole, or nil.
func CurrentUserFrom(c *gin.Context) *models.AdminUser {
	if v, ok := c.Get(ContextCurrentUser); ok {
		if user, ok := v.(*models.AdminUser); ok {
			return user
		}
	}
	return nil
}
