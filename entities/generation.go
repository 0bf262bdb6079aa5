package entities

import "time"

// Variant is one candidate piece of generated copy for a channel. The
// same shape is reused everywhere content comes back from a model:
// multi-channel generation, post series, content-plan drafts.
type Variant struct {
	Headline     string   `json:"headline,omitempty"`
	Body         string   `json:"body"`
	CTA          string   `json:"cta,omitempty"`
	Hashtags     []string `json:"hashtags,omitempty"`
	ImagePrompt  string   `json:"image_prompt,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Score        float64  `json:"score"`
	Improvements []string `json:"improvements,omitempty"`
}

type Generation struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	UserID      uint                 `gorm:"index" json:"user_id"`
	Description string               `json:"description"`
	Channels    []string             `gorm:"serializer:json" json:"channels"`
	Variants    map[string][]Variant `gorm:"serializer:json" json:"variants"`
	NumVariants int                  `gorm:"default:1" json:"num_variants"`
	IsSaved     bool                 `gorm:"default:false" json:"is_saved"`
	CreatedAt   time.Time            `json:"created_at"`
}
