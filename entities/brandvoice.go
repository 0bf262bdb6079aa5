package entities

import "time"

// BrandVoice holds one style guideline per channel. The channel
// "general" acts as the fallback when no channel-specific row exists.
type BrandVoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Channel   string    `gorm:"uniqueIndex;size:50" json:"channel"`
	Content   string    `json:"content"`
	Examples  []string  `gorm:"serializer:json" json:"examples"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BrandVoiceExample struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Channel      string    `gorm:"size:50" json:"channel"`
	OriginalText string    `json:"original_text"`
	CreatedAt    time.Time `json:"created_at"`
}
