package models

import (
	"time"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

// PostStatuses lists all blog post statuses.
func PostStatuses() []PostStatus {
	return []PostStatus{PostDraft, PostPublished, PostArchived}
}

// ValidPostStatus reports whether s names a known post status.
func ValidPostStatus(s string) bool {
	switch PostStatus(s) {
	case PostDraft, PostPublished, PostArchived:
		return true
	}
	return false
}

type BlogPost struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug          string     `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Content       string     `json:"content" gorm:"type:text;not null"`
	Excerpt       string     `json:"excerpt" gorm:"type:text"`
	FeaturedImage string     `json:"featured_image" gorm:"type:varchar(500)"`
	Status        PostStatus `json:"status" gorm:"type:varchar(50);default:'draft';not null"`
	PublishedAt   *time.Time `json:"published_at"`
	ViewsCount    int        `json:"views_count" gorm:"default:0;not null"`
	LikesCount    int        `json:"likes_count" gorm:"default:0;not null"`
	IsFeatured    bool       `json:"is_featured" gorm:"default:false;not null"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsPublished reports whether the post is visible to the public.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostPublished
}
