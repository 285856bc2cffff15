package services

import (
	"errors"
	"fmt"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type InterestService struct{}

func NewInterestService() *InterestService {
	return &InterestService{}
}

type InterestFilter struct {
	Category string
	Featured bool
}

type InterestData struct {
	Title        string
	Category     string
	Description  *string
	ImageURL     *string
	ExternalURL  *string
	DisplayOrder *int
	IsFeatured   *bool
}

// List returns all interests ordered by display order then title,
// optionally narrowed by category or the featured flag.
func (s *InterestService) List(filter InterestFilter) ([]models.Interest, error) {
	query := models.DB.Model(&models.Interest{})

	if filter.Category != "" {
		if !models.ValidInterestCategory(filter.Category) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid category: %s", filter.Category))
		}
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}

	var interests []models.Interest
	if err := query.Order("display_order asc").Order("title asc").Find(&interests).Error; err != nil {
		return nil, apierr.Database("")
	}
	return interests, nil
}

func (s *InterestService) Get(id uint) (*models.Interest, error) {
	var interest models.Interest
	if err := models.DB.First(&interest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Interest not found")
		}
		return nil, apierr.Database("")
	}
	return &interest, nil
}

func (s *InterestService) Create(data InterestData) (*models.Interest, error) {
	if !models.ValidInterestCategory(data.Category) {
		return nil, apierr.Validation(fmt.Sprintf("Invalid category: %s", data.Category))
	}

	interest := &models.Interest{
		Title:    data.Title,
		Category: models.InterestCategory(data.Category),
	}
	if data.Description != nil {
		interest.Description = *data.Description
	}
	if data.ImageURL != nil {
		interest.ImageURL = *data.ImageURL
	}
	if data.ExternalURL != nil {
		interest.ExternalURL = *data.ExternalURL
	}
	if data.DisplayOrder != nil {
		interest.DisplayOrder = *data.DisplayOrder
	}
	if data.IsFeatured != nil {
		interest.IsFeatured = *data.IsFeatured
	}

	if err := models.DB.Create(interest).Error; err != nil {
		return nil, apierr.Database("")
	}
	return interest, nil
}

func (s *InterestService) Update(id uint, data InterestData) (*models.Interest, error) {
	interest, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Title != "" {
		interest.Title = data.Title
	}
	if data.Category != "" {
		if !models.ValidInterestCategory(data.Category) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid category: %s", data.Category))
		}
		interest.Category = models.InterestCategory(data.Category)
	}
	if data.Description != nil {
		interest.Description = *data.Description
	}
	if data.ImageURL != nil {
		interest.ImageURL = *data.ImageURL
	}
	if data.ExternalURL != nil {
		interest.ExternalURL = *data.ExternalURL
	}
	if data.DisplayOrder != nil {
		interest.DisplayOrder = *data.DisplayOrder
	}
	if data.IsFeatured != nil {
		interest.IsFeatured = *data.IsFeatured
	}

	if err := models.DB.Save(interest).Error; err != nil {
		return nil, apierr.Database("")
	}
	return interest, nil
}

func (s *InterestService) Delete(id uint) error {
	interest, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := models.DB.Delete(interest).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}

// InterestCategoryCount pairs a category with its display label and the
// number of interests in it.
type InterestCategoryCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

func (s *InterestService) Categories() ([]InterestCategoryCount, error) {
	var out []InterestCategoryCount
	for _, category := range models.InterestCategories() {
		var count int64
		if err := models.DB.Model(&models.Interest{}).Where("category = ?", category).Count(&count).Error; err != nil {
			return nil, apierr.Database("")
		}
		out = append(out, InterestCategoryCount{
			Value: string(category),
			Label: category.Label(),
			Count: count,
		})
	}
	return out, nil
}
