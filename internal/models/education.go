package models

import (
	"time"
)

type Education struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Institution  string     `json:"institution" gorm:"type:varchar(255);not null"`
	Degree       string     `json:"degree" gorm:"type:varchar(255);not null"`
	FieldOfStudy string     `json:"field_of_study" gorm:"type:varchar(255)"`
	GPA          *float64   `json:"gpa"`
	StartDate    time.Time  `json:"start_date" gorm:"type:date;not null"`
	EndDate      *time.Time `json:"end_date" gorm:"type:date"`
	IsCurrent    bool       `json:"is_current" gorm:"default:false;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Achievements string     `json:"achievements" gorm:"type:text"`
	DisplayOrder int        `json:"display_order" gorm:"default:0;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
