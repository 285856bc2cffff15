package models

import (
	"time"
)

type SkillCategory string

const (
	SkillTechnical     SkillCategory = "technical"
	SkillSoft          SkillCategory = "soft"
	SkillLanguage      SkillCategory = "language"
	SkillCertification SkillCategory = "certification"
)

// SkillCategories lists all skill categories.
func SkillCategories() []SkillCategory {
	return []SkillCategory{SkillTechnical, SkillSoft, SkillLanguage, SkillCertification}
}

// ValidSkillCategory reports whether s names a known skill category.
func ValidSkillCategory(s string) bool {
	switch SkillCategory(s) {
	case SkillTechnical, SkillSoft, SkillLanguage, SkillCertification:
		return true
	}
	return false
}

type Skill struct {
	ID               uint          `json:"id" gorm:"primaryKey"`
	Name             string        `json:"name" gorm:"type:varchar(100);not null"`
	Category         SkillCategory `json:"category" gorm:"type:varchar(50);not null"`
	ProficiencyLevel *int          `json:"proficiency_level" gorm:"check:proficiency_level >= 1 AND proficiency_level <= 5"`
	Description      string        `json:"description" gorm:"type:text"`
	Icon             string        `json:"icon" gorm:"type:varchar(100)"`
	DisplayOrder     int           `json:"display_order" gorm:"default:0;not null"`
	IsFeatured       bool          `json:"is_featured" gorm:"default:false;not null"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
