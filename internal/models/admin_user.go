package models

import (
	"time"
)

// AdminRole is the privilege tier of an admin account.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
	RoleEditor     AdminRole = "editor"
)

// ValidRole reports whether s names a known admin role.
func ValidRole(s string) bool {
	switch AdminRole(s) {
	case RoleSuperAdmin, RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// ManagementRoles is the role set accepted by admin-gated operations.
// Super-admin-gated operations accept only RoleSuperAdmin.
func ManagementRoles() []AdminRole {
	return []AdminRole{RoleAdmin, RoleSuperAdmin}
}

type AdminUser struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	FirstName    string     `json:"first_name" gorm:"type:varchar(100)"`
	LastName     string     `json:"last_name" gorm:"type:varchar(100)"`
	Role         AdminRole  `json:"role" gorm:"type:varchar(50);default:'admin';not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true;not null"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasRole reports whether the user's role is in the given set.
func (u *AdminUser) HasRole(roles ...AdminRole) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
