package models

import (
	"time"
)

type InterestCategory string

const (
	InterestMovie  InterestCategory = "movie"
	InterestTVShow InterestCategory = "tv_show"
	InterestMusic  InterestCategory = "music"
	InterestBook   InterestCategory = "book"
	InterestSport  InterestCategory = "sport"
	InterestHobby  InterestCategory = "hobby"
	InterestOther  InterestCategory = "other"
)

// InterestCategories lists all interest categories.
func InterestCategories() []InterestCategory {
	return []InterestCategory{
		InterestMovie, InterestTVShow, InterestMusic, InterestBook,
		InterestSport, InterestHobby, InterestOther,
	}
}

// ValidInterestCategory reports whether s names a known interest category.
func ValidInterestCategory(s string) bool {
	switch InterestCategory(s) {
	case InterestMovie, InterestTVShow, InterestMusic, InterestBook,
		InterestSport, InterestHobby, InterestOther:
		return true
	}
	return false
}

// Label returns the human-readable category name.
func (c InterestCategory) Label() string {
	switch c {
	case InterestMovie:
		return "Movie"
	case InterestTVShow:
		return "TV Show"
	case InterestMusic:
		return "Music"
	case InterestBook:
		return "Book"
	case InterestSport:
		return "Sport"
	case InterestHobby:
		return "Hobby"
	case InterestOther:
		return "Other"
	}
	return "Unknown"
}

type Interest struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	Title        string           `json:"title" gorm:"type:varchar(255);not null"`
	Category     InterestCategory `json:"category" gorm:"type:varchar(50);not null"`
	Description  string           `json:"description" gorm:"type:text"`
	ImageURL     string           `json:"image_url" gorm:"type:varchar(500)"`
	ExternalURL  string           `json:"external_url" gorm:"type:varchar(500)"`
	DisplayOrder int              `json:"display_order" gorm:"default:0;not null"`
	IsFeatured   bool             `json:"is_featured" gorm:"default:false;not null"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
