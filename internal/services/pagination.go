package services

import (
	"portfolio-api/internal/apierr"

	"gorm.io/gorm"
)

// Pagination describes one page of a list response.
type Pagination struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// paginate counts the query, clamps the page arguments and loads one
// page into out.
func paginate(query *gorm.DB, page, perPage int, out any) (*Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apierr.Database("")
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(out).Error; err != nil {
		return nil, apierr.Database("")
	}

	return &Pagination{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}, nil
}
