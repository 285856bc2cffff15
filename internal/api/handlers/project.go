package handlers

import (
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type CreateProjectRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	LongDescription *string `json:"long_description"`
	Technologies    *string `json:"technologies"`
	GithubURL       *string `json:"github_url"`
	LiveURL         *string `json:"live_url"`
	FeaturedImage   *string `json:"featured_image"`
	Images          *string `json:"images"`
	Status          string  `json:"status"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	DisplayOrder    *int    `json:"display_order"`
	IsFeatured      *bool   `json:"is_featured"`
}

type UpdateProjectRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description"`
	Technologies    *string `json:"technologies"`
	GithubURL       *string `json:"github_url"`
	LiveURL         *string `json:"live_url"`
	FeaturedImage   *string `json:"featured_image"`
	Images          *string `json:"images"`
	Status          string  `json:"status"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	DisplayOrder    *int    `json:"display_order"`
	IsFeatured      *bool   `json:"is_featured"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	projects, pagination, err := h.projectService.List(services.ProjectFilter{
		Status:   c.Query("status"),
		Featured: c.Query("featured") == "true",
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, paginated(projects, pagination))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, project)
}

func (h *ProjectHandler) Statuses(c *gin.Context) {
	statuses, err := h.projectService.Statuses()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, statuses)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: title, description"))
		return
	}

	project, err := h.projectService.Create(services.ProjectData{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		FeaturedImage:   req.FeaturedImage,
		Images:          req.Images,
		Status:          req.Status,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DisplayOrder:    req.DisplayOrder,
		IsFeatured:      req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	project, err := h.projectService.Update(id, services.ProjectData{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		FeaturedImage:   req.FeaturedImage,
		Images:          req.Images,
		Status:          req.Status,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DisplayOrder:    req.DisplayOrder,
		IsFeatured:      req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Project deleted successfully"})
}
