package serviceImp

import (
	"context"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/normalize"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

const (
	contentTemperature = 0.8
	contentMaxTokens   = 4000
)

// Generate produces variants for every requested channel in one
// provider call, enriches them with images, and persists the result.
// Provider failures degrade to the deterministic offline output; only
// persistence can fail.
func (s *Svc) Generate(ctx context.Context, userID uint, req types.GenerateRequest) (*entities.Generation, error) {
	req.Normalize()

	var variants map[string][]entities.Variant
	if s.offlineOnly() {
		variants = mockContent(req)
	} else {
		p := prompt.BuildContent(req, s.voices.Guideline(channelHint(req.Channels)))
		raw, err := s.llm.Complete(ctx, p.System, p.User, contentTemperature, contentMaxTokens)
		if err != nil {
			s.warn("content generation failed, using offline result", err)
			variants = mockContent(req)
		} else {
			variants = normalize.ChannelResults(raw, req.Channels, req.NumVariants)
		}
	}

	s.attachImages(ctx, variants)

	g := &entities.Generation{
		UserID:      userID,
		Description: req.Description,
		Channels:    req.Channels,
		Variants:    variants,
		NumVariants: req.NumVariants,
	}
	if err := s.hist.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

// channelHint picks the channel whose brand voice flavors a
// multi-channel prompt. The first requested channel wins.
func channelHint(channels []string) string {
	if len(channels) > 0 {
		return channels[0]
	}
	return ""
}

// attachImages resolves an image for every variant carrying an image
// prompt. A failed resolution leaves that one variant without an image
// and never affects its siblings.
func (s *Svc) attachImages(ctx context.Context, variants map[string][]entities.Variant) {
	if s.images == nil {
		return
	}
	for channel, list := range variants {
		for i := range list {
			if list[i].ImagePrompt == "" {
				continue
			}
			url, err := s.images.Resolve(ctx, list[i].ImagePrompt, channel)
			if err != nil {
				s.warn("image resolution failed", err)
				continue
			}
			list[i].ImageURL = url
		}
	}
}
