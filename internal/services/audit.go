package services

import (
	"encoding/json"
	"log"

	"portfolio-api/internal/models"
)

// Audit event types recorded by the authentication core.
const (
	EventLoginSuccess          = "login_success"
	EventLoginFailed           = "login_failed"
	EventLogout                = "logout"
	EventTokenRefresh          = "token_refresh"
	EventPasswordChangeSuccess = "password_change_success"
	EventPasswordChangeFailed  = "password_change_failed"
	EventUserCreated           = "user_created"
	EventUserUpdated           = "user_updated"
	EventUserDeleted           = "user_deleted"
)

// AuditService records authentication-relevant events. Recording is
// best-effort: persistence failures are logged and swallowed so an
// audit outage can never fail the parent operation.
type AuditService struct{}

func NewAuditService() *AuditService {
	return &AuditService{}
}

// Record appends an audit event. It never returns an error.
func (s *AuditService) Record(eventType string, adminID *uint, ip, userAgent string, details map[string]any) {
	var detailJSON string
	if len(details) > 0 {
		data, err := json.Marshal(details)
		if err != nil {
			log.Printf("audit: failed to encode details for %s: %v", eventType, err)
		} else {
			detailJSON = string(data)
		}
	}

	event := &models.AuditEvent{
		EventType: eventType,
		AdminID:   adminID,
		IPAddress: ip,
		UserAgent: userAgent,
		Details:   detailJSON,
	}

	if err := models.DB.Create(event).Error; err != nil {
		log.Printf("audit: failed to record %s: %v", eventType, err)
	}
}
