package types

import (
	"fmt"
	"unicode/utf8"

	"github.com/burnashoff2016/Yandex-AI/entities"
)

// Goals, tones and formats are stored as their Russian wire values so
// the prompts, the API and the persisted requests all agree.
const (
	GoalSales        = "продажа"
	GoalAwareness    = "узнаваемость"
	GoalEngagement   = "вовлечение"
	GoalAnnouncement = "анонс"

	ToneFormal   = "формальный"
	ToneFriendly = "дружелюбный"
	ToneBold     = "дерзкий"
	ToneExpert   = "экспертный"

	FormatShort     = "short"
	FormatLongread  = "longread"
	FormatCaseStudy = "case_study"
	FormatStory     = "story"
)

type GenerateRequest struct {
	Description string   `json:"description"`
	Channels    []string `json:"channels"`
	NumVariants int      `json:"num_variants"`
	Goal        string   `json:"goal"`
	Tone        string   `json:"tone"`
	Audience    string   `json:"audience,omitempty"`
	Offer       string   `json:"offer,omitempty"`
	Format      string   `json:"format,omitempty"`
}

// CheckLen validates a text field's length in runes. A max of 0 means
// no upper bound.
func CheckLen(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		return fmt.Errorf("%s must be at least %d characters", field, min)
	}
	if max > 0 && n > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}

// Validate checks the request's text-field bounds.
func (r *GenerateRequest) Validate() error {
	if err := CheckLen("description", r.Description, 10, 1000); err != nil {
		return err
	}
	if err := CheckLen("audience", r.Audience, 0, 500); err != nil {
		return err
	}
	return CheckLen("offer", r.Offer, 0, 200)
}

// Normalize fills request defaults in place.
func (r *GenerateRequest) Normalize() {
	if r.NumVariants < 1 {
		r.NumVariants = 1
	}
	if r.NumVariants > 3 {
		r.NumVariants = 3
	}
	if r.Goal == "" {
		r.Goal = GoalSales
	}
	if r.Tone == "" {
		r.Tone = ToneFriendly
	}
	if r.Format == "" {
		r.Format = FormatShort
	}
}

type HashtagSet struct {
	Hashtags        []string `json:"hashtags"`
	SellingHashtags []string `json:"selling_hashtags"`
}

type SeriesRequest struct {
	Topic   string `json:"topic"`
	Channel string `json:"channel"`
	Count   int    `json:"count"`
	Goal    string `json:"goal"`
	Tone    string `json:"tone"`
}

func (r *SeriesRequest) Validate() error { return CheckLen("topic", r.Topic, 10, 500) }

type ContentPlanRequest struct {
	Product      string   `json:"product"`
	DurationDays int      `json:"duration_days"`
	Channels     []string `json:"channels"`
	Goal         string   `json:"goal"`
}

func (r *ContentPlanRequest) Validate() error { return CheckLen("product", r.Product, 10, 500) }

type ContentPlanItem struct {
	Day     int              `json:"day"`
	Date    string           `json:"date"`
	Topic   string           `json:"topic"`
	Channel string           `json:"channel"`
	Draft   entities.Variant `json:"draft"`
}

type AudienceProfile struct {
	AgeRange           string   `json:"age_range"`
	Gender             string   `json:"gender"`
	Interests          []string `json:"interests"`
	Pains              []string `json:"pains"`
	Triggers           []string `json:"triggers"`
	Channels           []string `json:"channels"`
	ContentPreferences []string `json:"content_preferences"`
}

// BrandAnalysis is the structured result of the brand-voice style
// analysis before it is formatted into a markdown guideline.
type BrandAnalysis struct {
	Tone              string   `json:"tone"`
	Vocabulary        []string `json:"vocabulary"`
	SentenceStructure string   `json:"sentence_structure"`
	EmojiUsage        string   `json:"emoji_usage"`
	CTAStyle          string   `json:"cta_style"`
	LengthPreference  string   `json:"length_preference"`
	KeyPhrases        []string `json:"key_phrases"`
	Avoid             []string `json:"avoid"`
	Summary           string   `json:"summary"`
}

const (
	ImproveShorten = "shorten"
	ImproveEmoji   = "emoji"
	ImproveTone    = "tone"
	ImproveCTA     = "cta"
)

func ValidImproveAction(a string) bool {
	switch a {
	case ImproveShorten, ImproveEmoji, ImproveTone, ImproveCTA:
		return true
	}
	return false
}
