package services

import (
	"errors"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type EducationService struct{}

func NewEducationService() *EducationService {
	return &EducationService{}
}

type EducationData struct {
	Institution  string
	Degree       string
	FieldOfStudy *string
	GPA          *float64
	StartDate    *string
	EndDate      *string
	IsCurrent    *bool
	Description  *string
	Achievements *string
	DisplayOrder *int
}

// List returns all education records ordered by display order then
// most recent start date.
func (s *EducationService) List() ([]models.Education, error) {
	var records []models.Education
	if err := models.DB.Order("display_order asc").Order("start_date desc").Find(&records).Error; err != nil {
		return nil, apierr.Database("")
	}
	return records, nil
}

func (s *EducationService) Get(id uint) (*models.Education, error) {
	var record models.Education
	if err := models.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Education record not found")
		}
		return nil, apierr.Database("")
	}
	return &record, nil
}

func (s *EducationService) Create(data EducationData) (*models.Education, error) {
	if data.StartDate == nil || *data.StartDate == "" {
		return nil, apierr.Validation("Missing required fields: start_date")
	}
	start, err := parseDate(*data.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	record := &models.Education{
		Institution: data.Institution,
		Degree:      data.Degree,
		StartDate:   *start,
	}

	if data.FieldOfStudy != nil {
		record.FieldOfStudy = *data.FieldOfStudy
	}
	record.GPA = data.GPA
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
	if data.DisplayOrder != nil {
		record.DisplayOrder = *data.DisplayOrder
	}

	if err := models.DB.Create(record).Error; err != nil {
		return nil, apierr.Database("")
	}
	return record, nil
}

func (s *EducationService) Update(id uint, data EducationData) (*models.Education, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Institution != "" {
		record.Institution = data.Institution
	}
	if data.Degree != "" {
		record.Degree = data.Degree
	}
	if data.FieldOfStudy != nil {
		record.FieldOfStudy = *data.FieldOfStudy
	}
	if data.GPA != nil {
		record.GPA = data.GPA
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
	if data.DisplayOrder != nil {
		record.DisplayOrder = *data.DisplayOrder
	}

	if err := models.DB.Save(record).Error; err != nil {
		return nil, apierr.Database("")
	}
	return record, nil
}

func (s *EducationService) Delete(id uint) error {
	record, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := models.DB.Delete(record).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}
