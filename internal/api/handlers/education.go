package handlers

import (
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationService *services.EducationService
}

func NewEducationHandler(educationService *services.EducationService) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

type CreateEducationRequest struct {
	Institution  string   `json:"institution" binding:"required"`
	Degree       string   `json:"degree" binding:"required"`
	FieldOfStudy *string  `json:"field_of_study"`
	GPA          *float64 `json:"gpa"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsCurrent    *bool    `json:"is_current"`
	Description  *string  `json:"description"`
	Achievements *string  `json:"achievements"`
	DisplayOrder *int     `json:"display_order"`
}

type UpdateEducationRequest struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy *string  `json:"field_of_study"`
	GPA          *float64 `json:"gpa"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsCurrent    *bool    `json:"is_current"`
	Description  *string  `json:"description"`
	Achievements *string  `json:"achievements"`
	DisplayOrder *int     `json:"display_order"`
}

func (h *EducationHandler) List(c *gin.Context) {
	records, err := h.educationService.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, records)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	record, err := h.educationService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, record)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: institution, degree"))
		return
	}

	record, err := h.educationService.Create(services.EducationData{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		GPA:          req.GPA,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Description:  req.Description,
		Achievements: req.Achievements,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, record)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	record, err := h.educationService.Update(id, services.EducationData{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		GPA:          req.GPA,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Description:  req.Description,
		Achievements: req.Achievements,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, record)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.educationService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Education record deleted successfully"})
}
