package entities

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusCancelled = "cancelled"
)

func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusCancelled:
		return true
	}
	return false
}

type ScheduledPost struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"index" json:"user_id"`
	GenerationID  *uint          `json:"generation_id,omitempty"`
	Channel       string         `gorm:"size:50" json:"channel"`
	Content       map[string]any `gorm:"serializer:json" json:"content"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	Timezone      string         `gorm:"size:50;default:Europe/Moscow" json:"timezone"`
	Status        string         `gorm:"size:20;default:draft" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
