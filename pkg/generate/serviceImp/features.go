package serviceImp

import (
	"context"
	"strings"
	"time"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/normalize"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

func (s *Svc) Hashtags(ctx context.Context, text, channel string, count int) types.HashtagSet {
	if s.offlineOnly() {
		return mockHashtags(text, count)
	}
	p := prompt.BuildHashtags(text, channel, count)
	raw, err := s.llm.Complete(ctx, p.System, p.User, 0.7, 500)
	if err != nil {
		s.warn("hashtag generation failed, using offline result", err)
		return mockHashtags(text, count)
	}
	set := normalize.Hashtags(raw)
	if len(set.Hashtags) == 0 && len(set.SellingHashtags) == 0 {
		return mockHashtags(text, count)
	}
	return set
}

func (s *Svc) Series(ctx context.Context, req types.SeriesRequest) []entities.Variant {
	if s.offlineOnly() {
		return mockSeries(req.Topic, req.Count)
	}
	p := prompt.BuildSeries(req)
	raw, err := s.llm.Complete(ctx, p.System, p.User, 0.8, 4000)
	if err != nil {
		s.warn("series generation failed, using offline result", err)
		return mockSeries(req.Topic, req.Count)
	}
	return normalize.VariantList(raw, req.Count)
}

func (s *Svc) ContentPlan(ctx context.Context, req types.ContentPlanRequest) []types.ContentPlanItem {
	today := time.Now()
	if s.offlineOnly() {
		return mockContentPlan(req.Product, req.DurationDays, req.Channels, today)
	}
	p := prompt.BuildContentPlan(req)
	raw, err := s.llm.Complete(ctx, p.System, p.User, 0.7, 6000)
	if err != nil {
		s.warn("content plan generation failed, using offline result", err)
		return mockContentPlan(req.Product, req.DurationDays, req.Channels, today)
	}
	items, ok := normalize.PlanItems(raw, req.DurationDays, req.Channels, today)
	if !ok {
		return mockContentPlan(req.Product, req.DurationDays, req.Channels, today)
	}
	return items
}

func (s *Svc) Audience(ctx context.Context, product, description string) types.AudienceProfile {
	if s.offlineOnly() {
		return mockAudience()
	}
	p := prompt.BuildAudience(product, description)
	raw, err := s.llm.Complete(ctx, p.System, p.User, 0.3, 1000)
	if err != nil {
		s.warn("audience analysis failed, using offline result", err)
		return mockAudience()
	}
	profile, ok := normalize.Audience(raw)
	if !ok {
		return mockAudience()
	}
	return profile
}

// Improve rewrites a single text with one action. The provider's answer
// is used verbatim after trimming; failures fall back to a local
// deterministic transformation.
func (s *Svc) Improve(ctx context.Context, text, channel, action, targetTone string) string {
	if s.offlineOnly() {
		return mockImprove(text, action, targetTone)
	}
	p := prompt.BuildImprove(text, channel, action, targetTone)
	raw, err := s.llm.Complete(ctx, p.System, p.User, 0.7, 1000)
	if err != nil {
		s.warn("text improvement failed, using offline result", err)
		return mockImprove(text, action, targetTone)
	}
	out := strings.TrimSpace(normalize.StripFence(raw))
	if out == "" {
		return mockImprove(text, action, targetTone)
	}
	return out
}
