package services

import (
	"errors"
	"fmt"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type SkillService struct{}

func NewSkillService() *SkillService {
	return &SkillService{}
}

type SkillFilter struct {
	Category string
	Featured bool
	Page     int
	PerPage  int
}

type SkillData struct {
	Name             string
	Category         string
	ProficiencyLevel *int
	Description      string
	Icon             string
	DisplayOrder     *int
	IsFeatured       *bool
}

func validProficiency(level *int) bool {
	return level == nil || (*level >= 1 && *level <= 5)
}

// List returns one page of skills ordered by display order then name.
func (s *SkillService) List(filter SkillFilter) ([]models.Skill, *Pagination, error) {
	query := models.DB.Model(&models.Skill{})

	if filter.Category != "" {
		if !models.ValidSkillCategory(filter.Category) {
			return nil, nil, apierr.Validation(fmt.Sprintf("Invalid category: %s", filter.Category))
		}
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}

	query = query.Order("display_order asc").Order("name asc")

	var skills []models.Skill
	pagination, err := paginate(query, filter.Page, filter.PerPage, &skills)
	if err != nil {
		return nil, nil, err
	}
	return skills, pagination, nil
}

func (s *SkillService) Get(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := models.DB.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Skill not found")
		}
		return nil, apierr.Database("")
	}
	return &skill, nil
}

func (s *SkillService) Create(data SkillData) (*models.Skill, error) {
	if !models.ValidSkillCategory(data.Category) {
		return nil, apierr.Validation(fmt.Sprintf("Invalid category: %s", data.Category))
	}
	if !validProficiency(data.ProficiencyLevel) {
		return nil, apierr.Validation("Proficiency level must be between 1 and 5")
	}

	skill := &models.Skill{
		Name:             data.Name,
		Category:         models.SkillCategory(data.Category),
		ProficiencyLevel: data.ProficiencyLevel,
		Description:      data.Description,
		Icon:             data.Icon,
	}
	if data.DisplayOrder != nil {
		skill.DisplayOrder = *data.DisplayOrder
	}
	if data.IsFeatured != nil {
		skill.IsFeatured = *data.IsFeatured
	}

	if err := models.DB.Create(skill).Error; err != nil {
		return nil, apierr.Database("")
	}
	return skill, nil
}

func (s *SkillService) Update(id uint, data SkillData) (*models.Skill, error) {
	skill, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if data.Name != "" {
		skill.Name = data.Name
	}
	if data.Category != "" {
		if !models.ValidSkillCategory(data.Category) {
			return nil, apierr.Validation(fmt.Sprintf("Invalid category: %s", data.Category))
		}
		skill.Category = models.SkillCategory(data.Category)
	}
	if data.ProficiencyLevel != nil {
		if !validProficiency(data.ProficiencyLevel) {
			return nil, apierr.Validation("Proficiency level must be between 1 and 5")
		}
		skill.ProficiencyLevel = data.ProficiencyLevel
	}
	if data.Description != "" {
		skill.Description = data.Description
	}
	if data.Icon != "" {
		skill.Icon = data.Icon
	}
	if data.DisplayOrder != nil {
		skill.DisplayOrder = *data.DisplayOrder
	}
	if data.IsFeatured != nil {
		skill.IsFeatured = *data.IsFeatured
	}

	if err := models.DB.Save(skill).Error; err != nil {
		return nil, apierr.Database("")
	}
	return skill, nil
}

func (s *SkillService) Delete(id uint) error {
	skill, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := models.DB.Delete(skill).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}

// CategoryCount pairs a category value with the number of skills in it.
type CategoryCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

func (s *SkillService) Categories() ([]CategoryCount, error) {
	var out []CategoryCount
	for _, category := range models.SkillCategories() {
		var count int64
		if err := models.DB.Model(&models.Skill{}).Where("category = ?", category).Count(&count).Error; err != nil {
			return nil, apierr.Database("")
		}
		out = append(out, CategoryCount{Value: string(category), Count: count})
	}
	return out, nil
}

type SkillStats struct {
	TotalSkills      int64            `json:"total_skills"`
	FeaturedSkills   int64            `json:"featured_skills"`
	CategoryStats    map[string]int64 `json:"category_stats"`
	ProficiencyStats map[string]int64 `json:"proficiency_stats"`
}

func (s *SkillService) Stats() (*SkillStats, error) {
	stats := &SkillStats{
		CategoryStats:    make(map[string]int64),
		ProficiencyStats: make(map[string]int64),
	}

	if err := models.DB.Model(&models.Skill{}).Count(&stats.TotalSkills).Error; err != nil {
		return nil, apierr.Database("")
	}
	models.DB.Model(&models.Skill{}).Where("is_featured = ?", true).Count(&stats.FeaturedSkills)

	for _, category := range models.SkillCategories() {
		var count int64
		models.DB.Model(&models.Skill{}).Where("category = ?", category).Count(&count)
		stats.CategoryStats[string(category)] = count
	}
	for level := 1; level <= 5; level++ {
		var count int64
		models.DB.Model(&models.Skill{}).Where("proficiency_level = ?", level).Count(&count)
		stats.ProficiencyStats[fmt.Sprintf("level_%d", level)] = count
	}

	return stats, nil
}
