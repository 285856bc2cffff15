package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoutesRoleGating(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	superAdmin := createTestAdmin(t, cfg, "root", models.RoleSuperAdmin, true)
	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	editor := createTestAdmin(t, cfg, "bob", models.RoleEditor, true)
	router := setupTestRouter(cfg)

	t.Run("super admin can list users", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/users", accessTokenFor(t, cfg, superAdmin), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("admin is rejected with 403", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/users", accessTokenFor(t, cfg, admin), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "AUTHORIZATION_ERROR", errorCode(t, w))
		assert.Contains(t, w.Body.String(), "Insufficient permissions")
	})

	t.Run("editor is rejected with 403", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/users", accessTokenFor(t, cfg, editor), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous is rejected with 401", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/users", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("a valid token stops working once the account is deactivated", func(t *testing.T) {
		token := accessTokenFor(t, cfg, superAdmin)

		w := doJSON(router, "GET", "/api/users", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, models.DB.Model(&models.AdminUser{}).
			Where("id = ?", superAdmin.ID).Update("is_active", false).Error)
		defer models.DB.Model(&models.AdminUser{}).
			Where("id = ?", superAdmin.ID).Update("is_active", true)

		w = doJSON(router, "GET", "/api/users", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User not found or inactive")
	})

	t.Run("a valid token stops working once the account is deleted", func(t *testing.T) {
		doomed := createTestAdmin(t, cfg, "doomed", models.RoleSuperAdmin, true)
		token := accessTokenFor(t, cfg, doomed)

		require.NoError(t, models.DB.Delete(doomed).Error)

		w := doJSON(router, "GET", "/api/users", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User not found or inactive")
	})
}

func TestUserManagementRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	superAdmin := createTestAdmin(t, cfg, "root", models.RoleSuperAdmin, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, superAdmin)

	t.Run("create user", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/users", token, map[string]interface{}{
			"username": "carol",
			"email":    "carol@example.com",
			"password": "C4rol-Pass!",
			"role":     "editor",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var created models.AdminUser
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, models.RoleEditor, created.Role)
		assert.True(t, created.IsActive)

		events := auditEvents(t, services.EventUserCreated)
		require.NotEmpty(t, events)
		assert.Contains(t, events[len(events)-1].Details, "carol")
	})

	t.Run("duplicate username", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/users", token, map[string]interface{}{
			"username": "carol",
			"email":    "other@example.com",
			"password": "C4rol-Pass!",
			"role":     "editor",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username already exists")
	})

	t.Run("invalid role", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/users", token, map[string]interface{}{
			"username": "dave",
			"email":    "dave@example.com",
			"password": "D4ve-Pass!!",
			"role":     "overlord",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid role")
	})

	t.Run("weak password is rejected with every unmet rule", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/users", token, map[string]interface{}{
			"username": "dave",
			"email":    "dave@example.com",
			"password": "weak",
			"role":     "editor",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Password does not meet requirements")
		assert.Contains(t, w.Body.String(), "uppercase")
		assert.Contains(t, w.Body.String(), "number")
	})

	t.Run("update role and active flag", func(t *testing.T) {
		target := createTestAdmin(t, cfg, "erin", models.RoleEditor, true)

		w := doJSON(router, "PUT", fmt.Sprintf("/api/users/%d", target.ID), token, map[string]interface{}{
			"role":      "admin",
			"is_active": false,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var updated models.AdminUser
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, models.RoleAdmin, updated.Role)
		assert.False(t, updated.IsActive)
	})

	t.Run("cannot demote the last super admin", func(t *testing.T) {
		w := doJSON(router, "PUT", fmt.Sprintf("/api/users/%d", superAdmin.ID), token, map[string]interface{}{
			"role": "admin",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Cannot demote the last super admin account")
	})

	t.Run("cannot delete your own account", func(t *testing.T) {
		w := doJSON(router, "DELETE", fmt.Sprintf("/api/users/%d", superAdmin.ID), token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
		assert.Contains(t, w.Body.String(), "Cannot delete your own account")
	})

	t.Run("cannot delete the last super admin", func(t *testing.T) {
		other := createTestAdmin(t, cfg, "second", models.RoleSuperAdmin, true)
		otherToken := accessTokenFor(t, cfg, other)

		// Delete the first super admin so "second" becomes the last one
		w := doJSON(router, "DELETE", fmt.Sprintf("/api/users/%d", superAdmin.ID), otherToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		recreated := createTestAdmin(t, cfg, "root2", models.RoleAdmin, true)

		w = doJSON(router, "DELETE", fmt.Sprintf("/api/users/%d", other.ID), otherToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Cannot delete your own account")

		// Even another super admin could not remove the last one; verify
		// via the service guard directly
		tokens := services.NewTokenService(cfg)
		audit := services.NewAuditService()
		auth := services.NewAuthService(cfg, tokens, audit)
		userService := services.NewUserService(auth, audit)

		err := userService.Delete(other.ID, recreated.ID, "127.0.0.1", "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot delete the last super admin account")
	})

	t.Run("delete a regular admin", func(t *testing.T) {
		target := createTestAdmin(t, cfg, "victim", models.RoleAdmin, true)
		superToken := accessTokenFor(t, cfg, func() *models.AdminUser {
			var u models.AdminUser
			require.NoError(t, models.DB.Where("username = ?", "second").First(&u).Error)
			return &u
		}())

		w := doJSON(router, "DELETE", fmt.Sprintf("/api/users/%d", target.ID), superToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		models.DB.Model(&models.AdminUser{}).Where("id = ?", target.ID).Count(&count)
		assert.Equal(t, int64(0), count)

		events := auditEvents(t, services.EventUserDeleted)
		require.NotEmpty(t, events)
		assert.Contains(t, events[len(events)-1].Details, "victim")
	})

	t.Run("delete not found", func(t *testing.T) {
		superToken := accessTokenFor(t, cfg, func() *models.AdminUser {
			var u models.AdminUser
			require.NoError(t, models.DB.Where("username = ?", "second").First(&u).Error)
			return &u
		}())

		w := doJSON(router, "DELETE", "/api/users/99999", superToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, w))
	})

	t.Run("failed delete leaves no audit trail", func(t *testing.T) {
		target := createTestAdmin(t, cfg, "stuck", models.RoleAdmin, true)
		before := len(auditEvents(t, services.EventUserDeleted))

		// Block the row delete at the database so the service call fails
		require.NoError(t, models.DB.Exec(
			"CREATE TRIGGER block_admin_delete BEFORE DELETE ON admin_users BEGIN SELECT RAISE(ABORT, 'blocked'); END").Error)
		defer models.DB.Exec("DROP TRIGGER block_admin_delete")

		tokens := services.NewTokenService(cfg)
		audit := services.NewAuditService()
		auth := services.NewAuthService(cfg, tokens, audit)
		userService := services.NewUserService(auth, audit)

		err := userService.Delete(target.ID, superAdmin.ID, "127.0.0.1", "test")
		require.Error(t, err)

		assert.Len(t, auditEvents(t, services.EventUserDeleted), before)
	})
}
