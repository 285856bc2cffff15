package handlers

import (
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

func NewPortfolioHandler(portfolioService *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

func (h *PortfolioHandler) Summary(c *gin.Context) {
	summary, err := h.portfolioService.Summary()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, summary)
}
