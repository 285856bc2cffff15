package handlers

import (
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	interestService *services.InterestService
}

func NewInterestHandler(interestService *services.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interestService}
}

type CreateInterestRequest struct {
	Title        string  `json:"title" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	ExternalURL  *string `json:"external_url"`
	DisplayOrder *int    `json:"display_order"`
	IsFeatured   *bool   `json:"is_featured"`
}

type UpdateInterestRequest struct {
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	ExternalURL  *string `json:"external_url"`
	DisplayOrder *int    `json:"display_order"`
	IsFeatured   *bool   `json:"is_featured"`
}

func (h *InterestHandler) List(c *gin.Context) {
	interests, err := h.interestService.List(services.InterestFilter{
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, interests)
}

func (h *InterestHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	interest, err := h.interestService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, interest)
}

func (h *InterestHandler) Create(c *gin.Context) {
	var req CreateInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: title, category"))
		return
	}

	interest, err := h.interestService.Create(services.InterestData{
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ExternalURL:  req.ExternalURL,
		DisplayOrder: req.DisplayOrder,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, interest)
}

func (h *InterestHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	interest, err := h.interestService.Update(id, services.InterestData{
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ExternalURL:  req.ExternalURL,
		DisplayOrder: req.DisplayOrder,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, interest)
}

func (h *InterestHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.interestService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Interest deleted successfully"})
}

func (h *InterestHandler) Categories(c *gin.Context) {
	categories, err := h.interestService.Categories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, categories)
}
