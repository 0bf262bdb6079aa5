package repository

import "github.com/burnashoff2016/Yandex-AI/entities"

// SettingsRepository manages the single image-settings row.
type SettingsRepository interface {
	// Get returns the settings row, creating it with safe defaults
	// (disabled, no key) when absent.
	Get() (*entities.ImageSettings, error)
	Update(s *entities.ImageSettings) error
}
