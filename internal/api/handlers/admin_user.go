package handlers

import (
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminUserHandler exposes admin account management. All routes are
// super-admin gated, so middleware.CurrentUserFrom is always set.
type AdminUserHandler struct {
	userService *services.UserService
}

func NewAdminUserHandler(userService *services.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

type CreateAdminRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UpdateAdminRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"users": users})
}

func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, user)
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: username, email, password, role"))
		return
	}

	actor := middleware.CurrentUserFrom(c)

	user, err := h.userService.Create(services.CreateAdminData{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}, actor.ID, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, user)
}

func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	actor := middleware.CurrentUserFrom(c)

	user, err := h.userService.Update(id, services.UpdateAdminData{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  req.IsActive,
	}, actor.ID, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, user)
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := middleware.CurrentUserFrom(c)

	if err := h.userService.Delete(id, actor.ID, c.ClientIP(), c.GetHeader("User-Agent")); err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "User deleted successfully"})
}
