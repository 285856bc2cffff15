package handlers

import (
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type CreateBlogPostRequest struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Content       string `json:"content" binding:"required"`
	Excerpt       string `json:"excerpt"`
	FeaturedImage string `json:"featured_image"`
	Status        string `json:"status"`
	IsFeatured    bool   `json:"is_featured"`
}

type UpdateBlogPostRequest struct {
	Title         *string `json:"title"`
	Slug          *string `json:"slug"`
	Content       *string `json:"content"`
	Excerpt       *string `json:"excerpt"`
	FeaturedImage *string `json:"featured_image"`
	Status        *string `json:"status"`
	IsFeatured    *bool   `json:"is_featured"`
}

func (h *BlogHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)
	status := c.DefaultQuery("status", "published")

	// Unpublished posts are only listable by content managers. The
	// route uses optional auth, so the account is checked against the
	// store here rather than trusting the token's role claim.
	if status != string(models.PostPublished) {
		if _, aerr := middleware.Authorize(c, models.ManagementRoles()...); aerr != nil {
			fail(c, aerr)
			return
		}
	}

	posts, pagination, err := h.blogService.List(services.BlogFilter{
		Status:   status,
		Featured: c.Query("featured") == "true",
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, paginated(posts, pagination))
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.blogService.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, post)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, post)
}

func (h *BlogHandler) Statuses(c *gin.Context) {
	statuses, err := h.blogService.Statuses()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, statuses)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Missing required fields: title, slug, content"))
		return
	}

	post, err := h.blogService.Create(services.CreateBlogPostData{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(201, post)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apierr.Validation("Invalid request body"))
		return
	}

	post, err := h.blogService.Update(id, services.UpdateBlogPostData{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Blog post deleted successfully"})
}

func (h *BlogHandler) Like(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.blogService.Like(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(200, gin.H{
		"likes_count": post.LikesCount,
		"message":     "Post liked successfully",
	})
}

func (h *BlogHandler) Stats(c *gin.Context) {
	stats, err := h.blogService.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, stats)
}
