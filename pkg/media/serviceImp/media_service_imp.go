package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"github.com/burnashoff2016/Yandex-AI/config"
	"github.com/burnashoff2016/Yandex-AI/pkg/ai"
	"github.com/burnashoff2016/Yandex-AI/pkg/media/repository"
)

// ImageSvc resolves image prompts into image references. The database
// settings row overrides the environment key, and a disabled or
// unconfigured provider yields a deterministic placeholder rather than
// an error. Only a live provider failure surfaces as an error, so the
// caller can choose between skipping the image and substituting the
// placeholder.
type ImageSvc struct {
	cfg      config.AppConfig
	settings repository.SettingsRepository
	log      *zap.Logger
}

func New(cfg config.AppConfig, settings repository.SettingsRepository, log *zap.Logger) *ImageSvc {
	return &ImageSvc{cfg: cfg, settings: settings, log: log}
}

func (s *ImageSvc) Resolve(ctx context.Context, prompt, channel string) (string, error) {
	if s.cfg.MockMode {
		return ai.Placeholder(prompt), nil
	}

	key := s.cfg.OpenRouterAPIKey
	model := s.cfg.ImageModel
	enabled := key != ""
	if cur, err := s.settings.Get(); err == nil {
		enabled = cur.Enabled
		if cur.APIKey != nil && *cur.APIKey != "" {
			key = *cur.APIKey
		}
		if cur.Model != "" {
			model = cur.Model
		}
	} else if s.log != nil {
		s.log.Warn("image settings unavailable, using environment config", zap.Error(err))
	}

	if !enabled || key == "" {
		return ai.Placeholder(prompt), nil
	}
	return ai.NewOpenRouterImage(key, model).Generate(ctx, prompt, channel)
}
