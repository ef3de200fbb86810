package model

import "time"

// WebhookEvent records processed webhook deliveries so replays are no-ops.
type WebhookEvent struct {
	BaseModel
	EventID     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"event_id"`
	EventType   string    `gorm:"type:varchar(100)" json:"event_type"`
	Source      string    `gorm:"type:varchar(50)" json:"source"` // "clerk" or "paypal"
	ProcessedAt time.Time `json:"processed_at"`
}

func (WebhookEvent) TableName() string {
	return "webhook_events"
}
