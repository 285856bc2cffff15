package handlers

import (
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *services.AuthService
	auditService *services.AuditService
}

func NewAuthHandler(authService *services.AuthService, auditService *services.AuditService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User   *models.AdminUser   `json:"user"`
	Tokens *services.TokenPair `json:"tokens"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Login authenticates an admin and issues a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: username, password"))
		return
	}

	user, tokens, err := h.authService.Login(req.Username, req.Password, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, LoginResponse{User: user, Tokens: tokens})
}

// Refresh mints a new access token from a refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: refresh_token"))
		return
	}

	pair, err := h.authService.Refresh(req.RefreshToken, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"access_token": pair.AccessToken,
		"token_type":   pair.TokenType,
		"expires_in":   pair.ExpiresIn,
	})
}

// Logout records the logout. Tokens are stateless and expire on their
// own; there is no server-side session to destroy.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, apierr.Authentication("Authorization required"))
		return
	}

	if adminID, err := claims.AdminID(); err == nil {
		h.auditService.Record(services.EventLogout, &adminID, c.ClientIP(), c.GetHeader("User-Agent"),
			map[string]any{"username": claims.Username})
	}

	c.JSON(200, gin.H{"message": "Logout successful"})
}

// Me returns the current identity, re-read from the store.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.resolveCaller(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, user)
}

// ValidateToken confirms the presented access token is valid.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, apierr.Authentication("Invalid token"))
		return
	}

	c.JSON(200, gin.H{
		"valid": true,
		"user": gin.H{
			"id":       claims.Subject,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}

// ChangePassword verifies the caller's current password and sets a new
// one that passes the strength rules.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		fail(c, apierr.Authentication("Authorization required"))
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: current_password, new_password"))
		return
	}

	adminID, err := claims.AdminID()
	if err != nil {
		fail(c, apierr.Authentication("Invalid token"))
		return
	}

	if err := h.authService.ChangePassword(adminID, req.CurrentPassword, req.NewPassword,
		c.ClientIP(), c.GetHeader("User-Agent")); err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Password changed successfully"})
}

func (h *AuthHandler) resolveCaller(c *gin.Context) (*models.AdminUser, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil, apierr.Authentication("Authorization required")
	}

	adminID, err := claims.AdminID()
	if err != nil {
		return nil, apierr.Authentication("Invalid token")
	}

	var user models.AdminUser
	if err := models.DB.First(&user, adminID).Error; err != nil {
		return nil, apierr.Authentication("User not found")
	}
	return &user, nil
}
