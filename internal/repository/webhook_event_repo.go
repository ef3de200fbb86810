package repository

import (
	"time"

	"extremefit-api/internal/model"

	"gorm.io/gorm"
)

type WebhookEventRepository interface {
	Exists(eventID string) (bool, error)
	MarkProcessed(eventID, eventType, source string) error
}

type webhookEventRepo struct {
	db *gorm.DB
}

func NewWebhookEventRepo(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepo{db}
}

func (r *webhookEventRepo) Exists(eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.WebhookEvent{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}

func (r *webhookEventRepo) MarkProcessed(eventID, eventType, source string) error {
	return r.db.Create(&model.WebhookEvent{
		EventID:     eventID,
		EventType:   eventType,
		Source:      source,
		ProcessedAt: time.Now(),
	}).Error
}
