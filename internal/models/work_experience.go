package models

import (
	"time"
)

type WorkExperience struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Company      string     `json:"company" gorm:"type:varchar(255);not null"`
	Position     string     `json:"position" gorm:"type:varchar(255);not null"`
	Location     string     `json:"location" gorm:"type:varchar(255)"`
	StartDate    time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate      *time.Time `json:"end_date" gorm:"type:date"`
	IsCurrent    bool       `json:"is_current" gorm:"default:false;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Achievements string     `json:"achievements" gorm:"type:text"`
	Technologies string     `json:"technologies" gorm:"type:text"`
	DisplayOrder int        `json:"display_order" gorm:"default:0;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
