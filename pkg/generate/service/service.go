package service

import (
	"context"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
)

// Event is one server-sent event emitted by the streaming path.
type Event struct {
	Name string
	Data any
}

// EmitFunc delivers one event to the client. A failed emit must not
// abort the generation: persistence happens regardless of the
// transport's health.
type EmitFunc func(Event) error

// ContentService covers every generation feature. No method returns a
// provider error: failures degrade to deterministic offline results.
type ContentService interface {
	Generate(ctx context.Context, userID uint, req types.GenerateRequest) (*entities.Generation, error)
	Stream(ctx context.Context, userID uint, req types.GenerateRequest, emit EmitFunc) (*entities.Generation, error)
	Hashtags(ctx context.Context, text, channel string, count int) types.HashtagSet
	Series(ctx context.Context, req types.SeriesRequest) []entities.Variant
	ContentPlan(ctx context.Context, req types.ContentPlanRequest) []types.ContentPlanItem
	Audience(ctx context.Context, product, description string) types.AudienceProfile
	Improve(ctx context.Context, text, channel, action, targetTone string) string
}

// BrandVoiceReader supplies the style guideline injected into prompts.
type BrandVoiceReader interface {
	Guideline(channel string) string
}

// ImageResolver turns an image prompt into an image reference.
type ImageResolver interface {
	Resolve(ctx context.Context, prompt, channel string) (string, error)
}
