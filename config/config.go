package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppName string
	Version string
	Port    string
	DBPath  string

	SecretKey      string
	TokenTTLHours  int

	LLMProvider      string // openai|yandex
	LLMModel         string
	LLMBaseURL       string
	OpenAIAPIKey     string
	YandexAPIKey     string
	OpenRouterAPIKey string
	ImageModel       string

	MockMode bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		AppName: "Marketing Content Generator",
		Version: "1.0.0",
		Port:    get("PORT", "8080"),
		DBPath:  get("DB_PATH", "marketing.db"),

		SecretKey:     get("SECRET_KEY", "your-secret-key-change-in-production"),
		TokenTTLHours: 24,

		LLMProvider:      get("LLM_PROVIDER", "openai"),
		LLMModel:         get("LLM_MODEL", "gpt-3.5-turbo"),
		LLMBaseURL:       get("LLM_BASE_URL", ""),
		OpenAIAPIKey:     get("OPENAI_API_KEY", ""),
		YandexAPIKey:     get("YANDEX_API_KEY", ""),
		OpenRouterAPIKey: get("OPENROUTER_API_KEY", ""),
		ImageModel:       get("IMAGE_MODEL", "google/gemini-3-pro-image-preview"),

		MockMode: get("MOCK_MODE", "false") == "true",
	}
	log.Printf("[cfg] provider=%s model=%s mock=%v db=%s", cfg.LLMProvider, cfg.LLMModel, cfg.MockMode, cfg.DBPath)
	return cfg
}
