package handlers

import (
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

type CreateSkillRequest struct {
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category" binding:"required"`
	ProficiencyLevel *int   `json:"proficiency_level"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	DisplayOrder     *int   `json:"display_order"`
	IsFeatured       *bool  `json:"is_featured"`
}

type UpdateSkillRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel *int   `json:"proficiency_level"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
	DisplayOrder     *int   `json:"display_order"`
	IsFeatured       *bool  `json:"is_featured"`
}

func (h *SkillHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	skills, pagination, err := h.skillService.List(services.SkillFilter{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, paginated(skills, pagination))
}

func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	skill, err := h.skillService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, skill)
}

func (h *SkillHandler) Categories(c *gin.Context) {
	categories, err := h.skillService.Categories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, categories)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: name, category"))
		return
	}

	skill, err := h.skillService.Create(services.SkillData{
		Name:             req.Name,
		Category:         req.Category,
		ProficiencyLevel: req.ProficiencyLevel,
		Description:      req.Description,
		Icon:             req.Icon,
		DisplayOrder:     req.DisplayOrder,
		IsFeatured:       req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	skill, err := h.skillService.Update(id, services.SkillData{
		Name:             req.Name,
		Category:         req.Category,
		ProficiencyLevel: req.ProficiencyLevel,
		Description:      req.Description,
		Icon:             req.Icon,
		DisplayOrder:     req.DisplayOrder,
		IsFeatured:       req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.skillService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Skill deleted successfully"})
}

func (h *SkillHandler) Stats(c *gin.Context) {
	stats, err := h.skillService.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, stats)
}
