package serviceImp

import (
	"context"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/service"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
	"github.com/burnashoff2016/Yandex-AI/pkg/normalize"
	"github.com/burnashoff2016/Yandex-AI/pkg/prompt"
)

const streamMaxTokens = 2000

type channelPayload struct {
	Channel  string             `json:"channel"`
	Variants []entities.Variant `json:"variants"`
}

type donePayload struct {
	GenerationID uint `json:"generation_id"`
}

// Stream generates channels one at a time, emitting a channel_complete
// event as each finishes, in request order. The aggregate is persisted
// after the loop whether or not the client is still listening; the
// final done event carries the stored id.
func (s *Svc) Stream(ctx context.Context, userID uint, req types.GenerateRequest, emit service.EmitFunc) (*entities.Generation, error) {
	req.Normalize()

	base := prompt.BuildContent(req, s.voices.Guideline(channelHint(req.Channels)))
	all := make(map[string][]entities.Variant, len(req.Channels))

	for _, channel := range req.Channels {
		variants := s.streamChannel(ctx, req, base, channel)
		all[channel] = variants
		if err := emit(service.Event{Name: "channel_complete", Data: channelPayload{Channel: channel, Variants: variants}}); err != nil {
			s.warn("event emit failed, continuing generation", err)
		}
	}

	g := &entities.Generation{
		UserID:      userID,
		Description: req.Description,
		Channels:    req.Channels,
		Variants:    all,
		NumVariants: req.NumVariants,
	}
	if err := s.hist.Create(g); err != nil {
		return nil, err
	}

	if err := emit(service.Event{Name: "done", Data: donePayload{GenerationID: g.ID}}); err != nil {
		s.warn("done emit failed", err)
	}
	return g, nil
}

func (s *Svc) streamChannel(ctx context.Context, req types.GenerateRequest, base prompt.Prompt, channel string) []entities.Variant {
	var variants []entities.Variant
	if s.offlineOnly() {
		one := req
		one.Channels = []string{channel}
		variants = mockContent(one)[channel]
	} else {
		p := prompt.BuildChannelContent(base, channel)
		raw, err := s.llm.Complete(ctx, p.System, p.User, contentTemperature, streamMaxTokens)
		if err != nil {
			s.warn("channel generation failed, using offline result", err)
			one := req
			one.Channels = []string{channel}
			variants = mockContent(one)[channel]
		} else {
			variants = normalize.ChannelVariants(raw, channel, req.NumVariants)
		}
	}
	s.attachImages(ctx, map[string][]entities.Variant{channel: variants})
	return variants
}
