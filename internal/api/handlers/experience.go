package handlers

import (
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceService *services.ExperienceService
}

func NewExperienceHandler(experienceService *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

type CreateExperienceRequest struct {
	Company      string  `json:"company" binding:"required"`
	Position     string  `json:"position" binding:"required"`
	Location     *string `json:"location"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsCurrent    *bool   `json:"is_current"`
	Description  *string `json:"description"`
	Achievements *string `json:"achievements"`
	Technologies *string `json:"technologies"`
	DisplayOrder *int    `json:"display_order"`
}

type UpdateExperienceRequest struct {
	Company      string  `json:"company"`
	Position     string  `json:"position"`
	Location     *string `json:"location"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	IsCurrent    *bool   `json:"is_current"`
	Description  *string `json:"description"`
	Achievements *string `json:"achievements"`
	Technologies *string `json:"technologies"`
	DisplayOrder *int    `json:"display_order"`
}

func (h *ExperienceHandler) List(c *gin.Context) {
	records, err := h.experienceService.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	record, err := h.experienceService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: company, position"))
		return
	}

	record, err := h.experienceService.Create(services.ExperienceData{
		Company:      req.Company,
		Position:     req.Position,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Description:  req.Description,
		Achievements: req.Achievements,
		Technologies: req.Technologies,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, record)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	record, err := h.experienceService.Update(id, services.ExperienceData{
		Company:      req.Company,
		Position:     req.Position,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Description:  req.Description,
		Achievements: req.Achievements,
		Technologies: req.Technologies,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, record)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.experienceService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Work experience deleted successfully"})
}
