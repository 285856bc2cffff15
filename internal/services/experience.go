package services

import (
	"errors"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type ExperienceService struct{}

func NewExperienceService() *ExperienceService {
	return &ExperienceService{}
}

type ExperienceData struct {
	Company      string
	Position     string
	Location     *string
	StartDate    *string
	EndDate      *string
	IsCurrent    *bool
	Description  *string
	Achievements *string
	Technologies *string
	DisplayOrder *int
}

// List returns all work experience records ordered by display order
// then most recent start date.
func (s *ExperienceService) List() ([]models.WorkExperience, error) {
	var records []models.WorkExperience
	if err := models.DB.Order("display_order asc").Order("start_date desc").Find(&records).Error; err != nil {
		return nil, apierr.Database("")
	}
	return records, nil
}

func (s *ExperienceService) Get(id uint) (*models.WorkExperience, error) {
	var record models.WorkExperience
	if err := models.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Work experience not found")
		}
		return nil, apierr.Database("")
	}
	return &record, nil
}

func (s *ExperienceService) Create(data ExperienceData) (*models.WorkExperience, error) {
	if data.StartDate == nil || *data.StartDate == "" {
		return nil, apierr.Validation("Missing required fields: start_date")
	}
	start, err := parseDate(*data.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	record := &models.WorkExperience{
		Company:   data.Company,
		Position:  data.Position,
		StartDate: *start,
	}

	if data.Location != nil {
		record.Location = *data.Location
	}
	if data.EndDate != nil && *data.EndDate != "" {
		end, err := parseDate(*data.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		record.EndDate = end
	}
	if data.IsCurrent != nil {
		record.IsCurrent = *data.IsCurrent
	}
	if data.Description != nil {
		record.Description = *data.Description
	}
	if data.Achievements != nil {
		record.Achievements = *data.Achievements
	}
	if data.Technologies != nil {
		record.Technologies = *data.Technologies
	}
	if data.DisplayOrder != nil {
		record.DisplayOrder = *data.DisplayOrder
	}

	if err := models.DB.Create(record).Error; err != nil {
		return nil, apierr.Database("")
	}
	return record, nil
}

func (s *ExperienceService) Update(id uint, data ExperienceData) (*models.WorkExperience, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Company != "" {
		record.Company = data.Company
	}
	if data.Position != "" {
		record.Position = data.Position
	}
	if data.Location != nil {
		record.Location = *data.Location
	}
	if data.StartDate != nil && *data.StartDate != "" {
		start, err := parseDate(*data.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		record.StartDate = *start
	}
	if data.EndDate != nil {
		if *data.EndDate == "" {
			record.EndDate = nil
		} else {
			end, err := parseDate(*data.EndDate, "end_date")
			if err != nil {
				return nil, err
			}
			record.EndDate = end
		}
	}
	if data.IsCurrent != nil {
		record.IsCurrent = *data.IsCurrent
	}
	if data.Description != nil {
		record.Description = *data.Description
	}
	if data.Achievements != nil {
		record.Achievements = *data.Achievements
	}
	if data.Technologies != nil {
		record.Technologies = *data.Technologies
	}
	if data.DisplayOrder != nil {
		record.DisplayOrder = *data.DisplayOrder
	}

	if err := models.DB.Save(record).Error; err != nil {
		return nil, apierr.Database("")
	}
	return record, nil
}

func (s *ExperienceService) Delete(id uint) error {
	record, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := models.DB.Delete(record).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}
