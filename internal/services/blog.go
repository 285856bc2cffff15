package services

import (
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type BlogService struct{}

func NewBlogService() *BlogService {
	return &BlogService{}
}

type BlogFilter struct {
	Status   string
	Featured bool
	Page     int
	PerPage  int
}

type CreateBlogPostData struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	FeaturedImage string
	Status        string
	IsFeatured    bool
}

type UpdateBlogPostData struct {
	Title         *string
	Slug          *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	Status        *string
	IsFeatured    *bool
}

// List returns one page of posts, newest first.
func (s *BlogService) List(filter BlogFilter) ([]models.BlogPost, *Pagination, error) {
	query := models.DB.Model(&models.BlogPost{})

	if filter.Status != "" {
		if !models.ValidPostStatus(filter.Status) {
			return nil, nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", filter.Status))
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}

	query = query.Order("published_at desc").Order("created_at desc")

	var posts []models.BlogPost
	pagination, err := paginate(query, filter.Page, filter.PerPage, &posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, pagination, nil
}

// Get returns a post by id, counting a view on published posts.
func (s *BlogService) Get(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := models.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Blog post not found")
		}
		return nil, apierr.Database("")
	}
	s.countView(&post)
	return &post, nil
}

// GetBySlug returns a post by slug, counting a view on published posts.
func (s *BlogService) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := models.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Blog post not found")
		}
		return nil, apierr.Database("")
	}
	s.countView(&post)
	return &post, nil
}

func (s *BlogService) countView(post *models.BlogPost) {
	if !post.IsPublished() {
		return
	}
	post.ViewsCount++
	models.DB.Model(post).Update("views_count", post.ViewsCount)
}

func (s *BlogService) Create(data CreateBlogPostData) (*models.BlogPost, error) {
	status := models.PostDraft
	if data.Status != "" {
		if !models.ValidPostStatus(data.Status) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", data.Status))
		}
		status = models.PostStatus(data.Status)
	}

	var existing models.BlogPost
	if err := models.DB.Where("slug = ?", data.Slug).First(&existing).Error; err == nil {
		return nil, apierr.Validation("Slug already exists")
	}

	post := &models.BlogPost{
		Title:         data.Title,
		Slug:          data.Slug,
		Content:       data.Content,
		Excerpt:       data.Excerpt,
		FeaturedImage: data.FeaturedImage,
		Status:        status,
		IsFeatured:    data.IsFeatured,
	}

	if status == models.PostPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := models.DB.Create(post).Error; err != nil {
		return nil, apierr.Database("")
	}
	return post, nil
}

func (s *BlogService) Update(id uint, data UpdateBlogPostData) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := models.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Blog post not found")
		}
		return nil, apierr.Database("")
	}

	if data.Title != nil {
		post.Title = *data.Title
	}
	if data.Slug != nil && *data.Slug != post.Slug {
		var existing models.BlogPost
		if err := models.DB.Where("slug = ? AND id != ?", *data.Slug, id).First(&existing).Error; err == nil {
			return nil, apierr.Validation("Slug already exists")
		}
		post.Slug = *data.Slug
	}
	if data.Content != nil {
		post.Content = *data.Content
	}
	if data.Excerpt != nil {
		post.Excerpt = *data.Excerpt
	}
	if data.FeaturedImage != nil {
		post.FeaturedImage = *data.FeaturedImage
	}
	if data.IsFeatured != nil {
		post.IsFeatured = *data.IsFeatured
	}

	if data.Status != nil {
		if !models.ValidPostStatus(*data.Status) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", *data.Status))
		}
		newStatus := models.PostStatus(*data.Status)
		if newStatus == models.PostPublished && post.Status != models.PostPublished && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
		post.Status = newStatus
	}

	if err := models.DB.Save(&post).Error; err != nil {
		return nil, apierr.Database("")
	}
	return &post, nil
}

func (s *BlogService) Delete(id uint) error {
	var post models.BlogPost
	if err := models.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("Blog post not found")
		}
		return apierr.Database("")
	}
	if err := models.DB.Delete(&post).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}

// Like increments the like counter of a published post.
func (s *BlogService) Like(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := models.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Blog post not found")
		}
		return nil, apierr.Database("")
	}
	if !post.IsPublished() {
		return nil, apierr.Validation("Cannot like unpublished posts")
	}

	post.LikesCount++
	if err := models.DB.Model(&post).Update("likes_count", post.LikesCount).Error; err != nil {
		return nil, apierr.Database("")
	}
	return &post, nil
}

type BlogStats struct {
	TotalPosts     int64             `json:"total_posts"`
	PublishedPosts int64             `json:"published_posts"`
	DraftPosts     int64             `json:"draft_posts"`
	TotalViews     int64             `json:"total_views"`
	TotalLikes     int64             `json:"total_likes"`
	PopularPosts   []models.BlogPost `json:"popular_posts"`
}

func (s *BlogService) Stats() (*BlogStats, error) {
	stats := &BlogStats{}

	db := models.DB.Model(&models.BlogPost{})
	if err := db.Count(&stats.TotalPosts).Error; err != nil {
		return nil, apierr.Database("")
	}
	models.DB.Model(&models.BlogPost{}).Where("status = ?", models.PostPublished).Count(&stats.PublishedPosts)
	models.DB.Model(&models.BlogPost{}).Where("status = ?", models.PostDraft).Count(&stats.DraftPosts)

	var views, likes *int64
	models.DB.Model(&models.BlogPost{}).Select("sum(views_count)").Scan(&views)
	models.DB.Model(&models.BlogPost{}).Select("sum(likes_count)").Scan(&likes)
	if views != nil {
		stats.TotalViews = *views
	}
	if likes != nil {
		stats.TotalLikes = *likes
	}

	if err := models.DB.Where("status = ?", models.PostPublished).
		Order("views_count desc").Limit(5).Find(&stats.PopularPosts).Error; err != nil {
		return nil, apierr.Database("")
	}

	return stats, nil
}

// StatusCount pairs a status value with the number of posts in it.
type StatusCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

func (s *BlogService) Statuses() ([]StatusCount, error) {
	var out []StatusCount
	for _, status := range models.PostStatuses() {
		var count int64
		if err := models.DB.Model(&models.BlogPost{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, apierr.Database("")
		}
		out = append(out, StatusCount{Value: string(status), Count: count})
	}
	return out, nil
}
