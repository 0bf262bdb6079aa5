package ai

import (
	"context"
	"errors"

	"github.com/burnashoff2016/Yandex-AI/config"
)

// ErrOffline is returned by the offline stand-in. Callers treat it the
// same as any other provider failure: fall back to deterministic
// results instead of surfacing the error.
var ErrOffline = errors.New("ai: no provider configured")

// TextClient issues a single text-completion request against one
// configured backend.
type TextClient interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

// Select picks the text provider once per call site: offline mode wins,
// then an explicitly selected Yandex key, then an OpenAI key, then the
// offline stand-in. Pure function of the config value.
func Select(cfg config.AppConfig) TextClient {
	if cfg.MockMode {
		return Offline()
	}
	if cfg.LLMProvider == "yandex" && cfg.YandexAPIKey != "" {
		return NewYandexGPT(cfg.YandexAPIKey)
	}
	if cfg.OpenAIAPIKey != "" {
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	}
	return Offline()
}
