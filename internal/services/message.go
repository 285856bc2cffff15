package services

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-api/internal/apierr"
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type MessageService struct{}

func NewMessageService() *MessageService {
	return &MessageService{}
}

type MessageFilter struct {
	Status  string
	Page    int
	PerPage int
}

type CreateMessageData struct {
	Name    string
	Email   string
	Body    string
	Subject string
	Phone   string
	Company string
}

// List returns one page of messages, newest first.
func (s *MessageService) List(filter MessageFilter) ([]models.Message, *Pagination, error) {
	query := models.DB.Model(&models.Message{})

	if filter.Status != "" {
		if !models.ValidMessageStatus(filter.Status) {
			return nil, nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", filter.Status))
		}
		query = query.Where("status = ?", filter.Status)
	}

	query = query.Order("created_at desc")

	var messages []models.Message
	pagination, err := paginate(query, filter.Page, filter.PerPage, &messages)
	if err != nil {
		return nil, nil, err
	}
	return messages, pagination, nil
}

// Get returns a message by id, marking new messages as read.
func (s *MessageService) Get(id uint) (*models.Message, error) {
	var message models.Message
	if err := models.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Message not found")
		}
		return nil, apierr.Database("")
	}

	if message.Status == models.MessageNew {
		message.Status = models.MessageRead
		models.DB.Model(&message).Update("status", models.MessageRead)
	}

	return &message, nil
}

// Create stores a contact form submission.
func (s *MessageService) Create(data CreateMessageData) (*models.Message, error) {
	if !validEmail(data.Email) {
		return nil, apierr.Validation("Invalid email format")
	}

	message := &models.Message{
		Name:    data.Name,
		Email:   data.Email,
		Body:    data.Body,
		Subject: data.Subject,
		Phone:   data.Phone,
		Company: data.Company,
	}

	if err := models.DB.Create(message).Error; err != nil {
		return nil, apierr.Database("")
	}
	return message, nil
}

// UpdateStatus moves a message through its lifecycle.
func (s *MessageService) UpdateStatus(id uint, status string) (*models.Message, error) {
	if !models.ValidMessageStatus(status) {
		return nil, apierr.Validation(fmt.Sprintf("Invalid status: %s", status))
	}

	var message models.Message
	if err := models.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Message not found")
		}
		return nil, apierr.Database("")
	}

	message.Status = models.MessageStatus(status)
	if err := models.DB.Save(&message).Error; err != nil {
		return nil, apierr.Database("")
	}
	return &message, nil
}

func (s *MessageService) Delete(id uint) error {
	var message models.Message
	if err := models.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("Message not found")
		}
		return apierr.Database("")
	}
	if err := models.DB.Delete(&message).Error; err != nil {
		return apierr.Database("")
	}
	return nil
}

type MessageStats struct {
	TotalMessages    int64            `json:"total_messages"`
	NewMessages      int64            `json:"new_messages"`
	ReadMessages     int64            `json:"read_messages"`
	RepliedMessages  int64            `json:"replied_messages"`
	ArchivedMessages int64            `json:"archived_messages"`
	RecentMessages   []models.Message `json:"recent_messages"`
}

func (s *MessageService) Stats() (*MessageStats, error) {
	stats := &MessageStats{}

	if err := models.DB.Model(&models.Message{}).Count(&stats.TotalMessages).Error; err != nil {
		return nil, apierr.Database("")
	}
	models.DB.Model(&models.Message{}).Where("status = ?", models.MessageNew).Count(&stats.NewMessages)
	models.DB.Model(&models.Message{}).Where("status = ?", models.MessageRead).Count(&stats.ReadMessages)
	models.DB.Model(&models.Message{}).Where("status = ?", models.MessageReplied).Count(&stats.RepliedMessages)
	models.DB.Model(&models.Message{}).Where("status = ?", models.MessageArchived).Count(&stats.ArchivedMessages)

	if err := models.DB.Order("created_at desc").Limit(5).Find(&stats.RecentMessages).Error; err != nil {
		return nil, apierr.Database("")
	}

	return stats, nil
}

// validEmail performs the minimal shape check used for contact
// submissions.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".")
}
