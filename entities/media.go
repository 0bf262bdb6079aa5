package entities

import "time"

// ImageSettings is a single-row table holding the image provider
// configuration. Created lazily with safe defaults on first read.
type ImageSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	APIKey    *string   `gorm:"size:255" json:"api_key,omitempty"`
	Model     string    `gorm:"size:100;default:google/gemini-3-pro-image-preview" json:"model"`
	Enabled   bool      `gorm:"default:false" json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}
