package services

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

// UserService manages admin accounts. All operations are reserved for
// super admins; the handlers enforce that via the role middleware.
type UserService struct {
	auth  *AuthService
	audit *AuditService
}

func NewUserService(auth *AuthService, audit *AuditService) *UserService {
	return &UserService{auth: auth, audit: audit}
}

type CreateAdminData struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type UpdateAdminData struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Role      *string
	IsActive  *bool
}

// List returns all admin accounts.
func (s *UserService) List() ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := models.DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, apierr.Database("")
	}
	return users, nil
}

// Get returns a single admin account by id.
func (s *UserService) Get(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := models.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("User not found")
		}
		return nil, apierr.Database("")
	}
	return &user, nil
}

// Create provisions a new admin account.
func (s *UserService) Create(data CreateAdminData, actorID uint, ip, userAgent string) (*models.AdminUser, error) {
	var existing models.AdminUser
	if err := models.DB.Where("username = ?", data.Username).First(&existing).Error; err == nil {
		return nil, apierr.Validation("Username already exists")
	}
	if err := models.DB.Where("email = ?", data.Email).First(&existing).Error; err == nil {
		return nil, apierr.Validation("Email already exists")
	}

	if !models.ValidRole(data.Role) {
		return nil, apierr.Validation(fmt.Sprintf("Invalid role: %s", data.Role))
	}

	check := EvaluatePassword(data.Password)
	if !check.Valid {
		return nil, apierr.Validation(fmt.Sprintf("Password does not meet requirements: %s",
			strings.Join(check.Violations, ", ")))
	}

	hash, err := s.auth.HashPassword(data.Password)
	if err != nil {
		return nil, apierr.Internal("Failed to hash password")
	}

	user := &models.AdminUser{
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: hash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         models.AdminRole(data.Role),
		IsActive:     true,
	}

	if err := models.DB.Create(user).Error; err != nil {
		return nil, apierr.Database("")
	}

	s.audit.Record(EventUserCreated, &actorID, ip, userAgent,
		map[string]any{"created_user": user.Username, "role": string(user.Role)})

	return user, nil
}

// Update modifies an admin account. Nil fields are left untouched.
func (s *UserService) Update(id uint, data UpdateAdminData, actorID uint, ip, userAgent string) (*models.AdminUser, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Username != nil && *data.Username != user.Username {
		var existing models.AdminUser
		if err := models.DB.Where("username = ? AND id != ?", *data.Username, id).First(&existing).Error; err == nil {
			return nil, apierr.Validation("Username already exists")
		}
		user.Username = *data.Username
	}

	if data.Email != nil && *data.Email != user.Email {
		var existing models.AdminUser
		if err := models.DB.Where("email = ? AND id != ?", *data.Email, id).First(&existing).Error; err == nil {
			return nil, apierr.Validation("Email already exists")
		}
		user.Email = *data.Email
	}

	if data.FirstName != nil {
		user.FirstName = *data.FirstName
	}
	if data.LastName != nil {
		user.LastName = *data.LastName
	}

	if data.Role != nil {
		if !models.ValidRole(*data.Role) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid role: %s", *data.Role))
		}
		// Demoting the last super admin would lock everyone out of
		// user management.
		if user.Role == models.RoleSuperAdmin && models.AdminRole(*data.Role) != models.RoleSuperAdmin {
			last, err := s.isLastSuperAdmin(user.ID)
			if err != nil {
				return nil, err
			}
			if last {
				return nil, apierr.Validation("Cannot demote the last super admin account")
			}
		}
		user.Role = models.AdminRole(*data.Role)
	}

	if data.IsActive != nil {
		user.IsActive = *data.IsActive
	}

	if err := models.DB.Save(user).Error; err != nil {
		return nil, apierr.Database("")
	}

	s.audit.Record(EventUserUpdated, &actorID, ip, userAgent,
		map[string]any{"updated_user": user.Username, "role": string(user.Role)})

	return user, nil
}

// Delete removes an admin account. A caller can never delete their own
// account, and the last remaining super admin cannot be deleted. Audit
// rows referencing the account are kept.
func (s *UserService) Delete(id, actorID uint, ip, userAgent string) error {
	if id == actorID {
		return apierr.Validation("Cannot delete your own account")
	}

	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleSuperAdmin {
		last, err := s.isLastSuperAdmin(user.ID)
		if err != nil {
			return err
		}
		if last {
			return apierr.Validation("Cannot delete the last super admin account")
		}
	}

	if err := models.DB.Delete(user).Error; err != nil {
		return apierr.Database("")
	}

	s.audit.Record(EventUserDeleted, &actorID, ip, userAgent,
		map[string]any{"deleted_user": user.Username, "role": string(user.Role)})

	return nil
}

func (s *UserService) isLastSuperAdmin(id uint) (bool, error) {
	var count int64
	if err := models.DB.Model(&models.AdminUser{}).
		Where("role = ? AND id != ?", models.RoleSuperAdmin, id).
		Count(&count).Error; err != nil {
		return false, apierr.Database("")
	}
	return count == 0, nil
}
