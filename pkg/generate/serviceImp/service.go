package serviceImp

import (
	"go.uber.org/zap"

	"github.com/burnashoff2016/Yandex-AI/config"
	"github.com/burnashoff2016/Yandex-AI/pkg/ai"
	"github.com/burnashoff2016/Yandex-AI/pkg/generate/service"
	historyrepo "github.com/burnashoff2016/Yandex-AI/pkg/history/repository"
)

// Svc orchestrates every generation feature: prompt → provider →
// normalize → (optional) images → persist. Any provider failure at any
// stage converges on the deterministic mock result for the same input.
type Svc struct {
	cfg    config.AppConfig
	llm    ai.TextClient
	voices service.BrandVoiceReader
	images service.ImageResolver
	hist   historyrepo.HistoryRepository
	log    *zap.Logger
}

func New(cfg config.AppConfig, llm ai.TextClient, voices service.BrandVoiceReader, images service.ImageResolver, hist historyrepo.HistoryRepository, log *zap.Logger) *Svc {
	return &Svc{cfg: cfg, llm: llm, voices: voices, images: images, hist: hist, log: log}
}

// offlineOnly reports whether provider calls should be skipped
// entirely for this process.
func (s *Svc) offlineOnly() bool { return s.cfg.MockMode }

func (s *Svc) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, zap.Error(err))
	}
}
