package services

import (
	"errors"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type PortfolioService struct{}

func NewPortfolioService() *PortfolioService {
	return &PortfolioService{}
}

type PortfolioSummary struct {
	EducationCount    int64                  `json:"education_count"`
	ExperienceCount   int64                  `json:"experience_count"`
	InterestsCount    int64                  `json:"interests_count"`
	CurrentEducation  *models.Education      `json:"current_education"`
	CurrentExperience *models.WorkExperience `json:"current_experience"`
	FeaturedInterests []models.Interest      `json:"featured_interests"`
}

// Summary aggregates the public portfolio sections into one response:
// record counts, the current education and position, and up to five
// featured interests.
func (s *PortfolioService) Summary() (*PortfolioSummary, error) {
	summary := &PortfolioSummary{
		FeaturedInterests: []models.Interest{},
	}

	if err := models.DB.Model(&models.Education{}).Count(&summary.EducationCount).Error; err != nil {
		return nil, apierr.Database("")
	}
	if err := models.DB.Model(&models.WorkExperience{}).Count(&summary.ExperienceCount).Error; err != nil {
		return nil, apierr.Database("")
	}
	if err := models.DB.Model(&models.Interest{}).Count(&summary.InterestsCount).Error; err != nil {
		return nil, apierr.Database("")
	}

	var education models.Education
	if err := models.DB.Where("is_current = ?", true).First(&education).Error; err == nil {
		summary.CurrentEducation = &education
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.Database("")
	}

	var experience models.WorkExperience
	if err := models.DB.Where("is_current = ?", true).First(&experience).Error; err == nil {
		summary.CurrentExperience = &experience
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.Database("")
	}

	if err := models.DB.Where("is_featured = ?", true).
		Order("display_order asc").Limit(5).
		Find(&summary.FeaturedInterests).Error; err != nil {
		return nil, apierr.Database("")
	}

	return summary, nil
}
