package repository

import "github.com/burnashoff2016/Yandex-AI/entities"

type GuidelineRepository interface {
	GetByChannel(channel string) (*entities.BrandVoice, error)
	Upsert(v *entities.BrandVoice) error
	List() ([]entities.BrandVoice, error)
}

type ExampleRepository interface {
	Create(ex *entities.BrandVoiceExample) error
	List(channel string) ([]entities.BrandVoiceExample, error)
	Delete(id uint) error
}
