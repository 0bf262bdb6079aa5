package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/media/repository"
)

type settingsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SettingsRepository { return &settingsRepo{db} }

func (r *settingsRepo) Get() (*entities.ImageSettings, error) {
	var s entities.ImageSettings
	err := r.db.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entities.ImageSettings{Model: "google/gemini-3-pro-image-preview", Enabled: false}
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Update(s *entities.ImageSettings) error { return r.db.Save(s).Error }
