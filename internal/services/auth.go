package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns credential verification and the login, refresh and
// password-change flows. Expected failures surface as taxonomy errors;
// infrastructure failures surface as DatabaseError.
type AuthService struct {
	cfg    *config.Config
	tokens *TokenService
	audit  *AuditService
}

func NewAuthService(cfg *config.Config, tokens *TokenService, audit *AuditService) *AuthService {
	return &AuthService{cfg: cfg, tokens: tokens, audit: audit}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Security.BcryptCost)
	return string(bytes), err
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Tokens exposes the token service for the middleware layer.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

// Login verifies credentials and, on success, updates last_login and
// issues a token pair. Every attempt produces an audit event; failed
// attempts carry a reason (user_not_found, account_inactive,
// invalid_password) and collapse into the same caller-visible error so
// the response does not leak which rule tripped.
func (s *AuthService) Login(username, password, ip, userAgent string) (*models.AdminUser, *TokenPair, error) {
	var user models.AdminUser
	if err := models.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.audit.Record(EventLoginFailed, nil, ip, userAgent,
				map[string]any{"username": username, "reason": "user_not_found"})
			return nil, nil, apierr.Authentication("Invalid username or password")
		}
		return nil, nil, apierr.Database("")
	}

	if !user.IsActive {
		s.audit.Record(EventLoginFailed, &user.ID, ip, userAgent,
			map[string]any{"username": username, "reason": "account_inactive"})
		return nil, nil, apierr.Authentication("Account is inactive")
	}

	if !s.VerifyPassword(user.PasswordHash, password) {
		s.audit.Record(EventLoginFailed, &user.ID, ip, userAgent,
			map[string]any{"username": username, "reason": "invalid_password"})
		return nil, nil, apierr.Authentication("Invalid username or password")
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := models.DB.Save(&user).Error; err != nil {
		return nil, nil, apierr.Database("")
	}

	pair, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, nil, apierr.Internal("Failed to generate tokens")
	}

	s.audit.Record(EventLoginSuccess, &user.ID, ip, userAgent,
		map[string]any{"username": username, "role": string(user.Role)})

	return &user, pair, nil
}

// Refresh mints a new access token from a refresh token. The identity
// is re-read from the store so a deactivated or deleted account cannot
// keep refreshing.
func (s *AuthService) Refresh(refreshToken, ip, userAgent string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken, TokenRefresh)
	if err != nil {
		return nil, apierr.Authentication("Invalid refresh token")
	}

	adminID, err := claims.AdminID()
	if err != nil {
		return nil, apierr.Authentication("Invalid refresh token")
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

	pair, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apierr.Internal("Failed to generate tokens")
	}

	s.audit.Record(EventTokenRefresh, &user.ID, ip, userAgent,
		map[string]any{"username": user.Username})

	return pair, nil
}

// ChangePassword verifies the current password, checks the new one
// against the strength rules, and stores the new hash. Already-issued
// tokens remain valid until expiry.
func (s *AuthService) ChangePassword(adminID uint, currentPassword, newPassword, ip, userAgent string) error {
	var user models.AdminUser
	if err := models.DB.First(&user, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.Authentication("User not found")
		}
		return apierr.Database("")
	}

	if !s.VerifyPassword(user.PasswordHash, currentPassword) {
		s.audit.Record(EventPasswordChangeFailed, &user.ID, ip, userAgent,
			map[string]any{"reason": "invalid_current_password"})
		return apierr.Authentication("Current password is incorrect")
	}

	check := EvaluatePassword(newPassword)
	if !check.Valid {
		return apierr.Validation(fmt.Sprintf("Password does not meet requirements: %s",
			strings.Join(check.Violations, ", ")))
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return apierr.Internal("Failed to hash password")
	}

	user.PasswordHash = hash
	if err := models.DB.Save(&user).Error; err != nil {
		return apierr.Database("")
	}

	s.audit.Record(EventPasswordChangeSuccess, &user.ID, ip, userAgent,
		map[string]any{"username": user.Username})

	return nil
}

// CreateDefaultAdmin creates the bootstrap super admin account if no
// admin accounts exist yet.
func (s *AuthService) CreateDefaultAdmin() error {
	var count int64
	if err := models.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.HashPassword(s.cfg.DefaultAdmin.Password)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username:     s.cfg.DefaultAdmin.Username,
		Email:        s.cfg.DefaultAdmin.Email,
		PasswordHash: hash,
		FirstName:    s.cfg.DefaultAdmin.FirstName,
		LastName:     s.cfg.DefaultAdmin.LastName,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}

	return models.DB.Create(admin).Error
}
