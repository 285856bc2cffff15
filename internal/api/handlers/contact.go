package handlers

import (
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/config"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	messageService *services.MessageService
	cfg            *config.Config
}

func NewContactHandler(messageService *services.MessageService, cfg *config.Config) *ContactHandler {
	return &ContactHandler{messageService: messageService, cfg: cfg}
}

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
	Subject string `json:"subject"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Info returns the public contact card.
func (h *ContactHandler) Info(c *gin.Context) {
	contact := h.cfg.Contact
	c.JSON(200, gin.H{
		"email":    contact.Email,
		"phone":    contact.Phone,
		"location": contact.Location,
		"github":   contact.Github,
		"linkedin": contact.Linkedin,
	})
}

// Submit handles the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: name, email, message"))
		return
	}

	message, err := h.messageService.Create(services.CreateMessageData{
		Name:    req.Name,
		Email:   req.Email,
		Body:    req.Message,
		Subject: req.Subject,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, gin.H{
		"id":      message.ID,
		"message": "Message sent successfully",
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	messages, pagination, err := h.messageService.List(services.MessageFilter{
		Status:  c.Query("status"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, paginated(messages, pagination))
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	message, err := h.messageService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, message)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: status"))
		return
	}

	message, err := h.messageService.UpdateStatus(id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, message)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Message deleted successfully"})
}

func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.messageService.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, stats)
}
