package services

import (
	"errors"
	"fmt"
	"time"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type ProjectService struct{}

func NewProjectService() *ProjectService {
	return &ProjectService{}
}

type ProjectFilter struct {
	Status   string
	Featured bool
	Page     int
	PerPage  int
}

type ProjectData struct {
	Title           string
	Description     string
	LongDescription *string
	Technologies    *string
	GithubURL       *string
	LiveURL         *string
	FeaturedImage   *string
	Images          *string
	Status          string
	StartDate       *string
	EndDate         *string
	DisplayOrder    *int
	IsFeatured      *bool
}

// parseDate parses an ISO calendar date (YYYY-MM-DD).
func parseDate(value, field string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apierr.Validation(fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", field))
	}
	return &t, nil
}

// List returns one page of projects ordered by display order then
// recency.
func (s *ProjectService) List(filter ProjectFilter) ([]models.Project, *Pagination, error) {
	query := models.DB.Model(&models.Project{})

	if filter.Status != "" {
		if !models.ValidProjectStatus(filter.Status) {
			return nil, nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", filter.Status))
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}

	query = query.Order("display_order asc").Order("created_at desc")

	var projects []models.Project
	pagination, err := paginate(query, filter.Page, filter.PerPage, &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, pagination, nil
}

func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project
	if err := models.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Project not found")
		}
		return nil, apierr.Database("")
	}
	return &project, nil
}

func (s *ProjectService) Create(data ProjectData) (*models.Project, error) {
	status := models.ProjectCompleted
	if data.Status != "" {
		if !models.ValidProjectStatus(data.Status) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", data.Status))
		}
		status = models.ProjectStatus(data.Status)
	}

	project := &models.Project{
		Title:       data.Title,
		Description: data.Description,
		Status:      status,
	}

	if data.LongDescription != nil {
		project.LongDescription = *data.LongDescription
	}
	if data.Technologies != nil {
		project.Technologies = *data.Technologies
	}
	if data.GithubURL != nil {
		project.GithubURL = *data.GithubURL
	}
	if data.LiveURL != nil {
		project.LiveURL = *data.LiveURL
	}
	if data.FeaturedImage != nil {
		project.FeaturedImage = *data.FeaturedImage
	}
	if data.Images != nil {
		project.Images = *data.Images
	}
	if data.DisplayOrder != nil {
		project.DisplayOrder = *data.DisplayOrder
	}
	if data.IsFeatured != nil {
		project.IsFeatured = *data.IsFeatured
	}

	if data.StartDate != nil && *data.StartDate != "" {
		t, err := parseDate(*data.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		project.StartDate = t
	}
	if data.EndDate != nil && *data.EndDate != "" {
		t, err := parseDate(*data.EndDate, "end_date")
		if err != nil {
			return nil, err
		}
		project.EndDate = t
	}

	if err := models.DB.Create(project).Error; err != nil {
		return nil, apierr.Database("")
	}
	return project, nil
}

func (s *ProjectService) Update(id uint, data ProjectData) (*models.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Title != "" {
		project.Title = data.Title
	}
	if data.Description != "" {
		project.Description = data.Description
	}
	if data.LongDescription != nil {
		project.LongDescription = *data.LongDescription
	}
	if data.Technologies != nil {
		project.Technologies = *data.Technologies
	}
	if data.GithubURL != nil {
		project.GithubURL = *data.GithubURL
	}
	if data.LiveURL != nil {
		project.LiveURL = *data.LiveURL
	}
	if data.FeaturedImage != nil {
		project.FeaturedImage = *data.FeaturedImage
	}
	if data.Images != nil {
		project.Images = *data.Images
	}
	if data.DisplayOrder != nil {
		project.DisplayOrder = *data.DisplayOrder
	}
	if data.IsFeatured != nil {
		project.IsFeatured = *data.IsFeatured
	}

	if data.Status != "" {
		if !models.ValidProjectStatus(data.Status) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", data.Status))
		}
		project.Status = models.ProjectStatus(data.Status)
	}

	if data.StartDate != nil && *data.StartDate != "" {
		t, err := parseDate(*data.StartDate, "start_date")
		if err != nil {
			return nil, err
		}
		project.StartDate = t
	}
	if data.EndDate != nil {
		if *data.EndDate == "" {
			project.EndDate = nil
		} else {
			t, err := parseDate(*data.EndDate, "end_date")
			if err != nil {
				return nil, err
			}
			project.EndDate = t
		}
	}

	if err := models.DB.Save(project).Error; err != nil {
		return nil, apierr.Database("")
	}
	return project, nil
}

func (s *ProjectService) Delete(id uint) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := models.DB.Delete(project).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}

func (s *ProjectService) Statuses() ([]StatusCount, error) {
	var out []StatusCount
	for _, status := range models.ProjectStatuses() {
		var count int64
		if err := models.DB.Model(&models.Project{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, apierr.Database("")
		}
		out = append(out, StatusCount{Value: string(status), Count: count})
	}
	return out, nil
}
