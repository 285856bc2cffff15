package models

import (
	"time"
)

type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPlanned    ProjectStatus = "planned"
)

// ProjectStatuses lists all project statuses.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectCompleted, ProjectInProgress, ProjectPlanned}
}

// ValidProjectStatus reports whether s names a known project status.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectCompleted, ProjectInProgress, ProjectPlanned:
		return true
	}
	return false
}

type Project struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Title           string        `json:"title" gorm:"type:varchar(255);not null"`
	Description     string        `json:"description" gorm:"type:text;not null"`
	LongDescription string        `json:"long_description" gorm:"type:text"`
	Technologies    string        `json:"technologies" gorm:"type:text"`
	GithubURL       string        `json:"github_url" gorm:"type:varchar(500)"`
	LiveURL         string        `json:"live_url" gorm:"type:varchar(500)"`
	FeaturedImage   string        `json:"featured_image" gorm:"type:varchar(500)"`
	Images          string        `json:"images" gorm:"type:text"`
	Status          ProjectStatus `json:"status" gorm:"type:varchar(50);default:'completed';not null"`
	StartDate       *time.Time    `json:"start_date" gorm:"type:date"`
	EndDate         *time.Time    `json:"end_date" gorm:"type:date"`
	DisplayOrder    int           `json:"display_order" gorm:"default:0;not null"`
	IsFeatured      bool          `json:"is_featured" gorm:"default:false;not null"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
