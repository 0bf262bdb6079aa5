package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/repository"
)

type guidelineRepo struct{ db *gorm.DB }

func NewGuidelines(db *gorm.DB) repository.GuidelineRepository { return &guidelineRepo{db} }

func (r *guidelineRepo) GetByChannel(channel string) (*entities.BrandVoice, error) {
	var v entities.BrandVoice
	if err := r.db.Where("channel = ?", channel).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *guidelineRepo) Upsert(v *entities.BrandVoice) error {
	var existing entities.BrandVoice
	err := r.db.Where("channel = ?", v.Channel).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(v).Error
	}
	if err != nil {
		return err
	}
	v.ID = existing.ID
	return r.db.Save(v).Error
}

func (r *guidelineRepo) List() ([]entities.BrandVoice, error) {
	var out []entities.BrandVoice
	err := r.db.Order("channel").Find(&out).Error
	return out, err
}

type exampleRepo struct{ db *gorm.DB }

func NewExamples(db *gorm.DB) repository.ExampleRepository { return &exampleRepo{db} }

func (r *exampleRepo) Create(ex *entities.BrandVoiceExample) error { return r.db.Create(ex).Error }

func (r *exampleRepo) List(channel string) ([]entities.BrandVoiceExample, error) {
	var out []entities.BrandVoiceExample
	q := r.db.Order("created_at DESC")
	if channel != "" {
		q = q.Where("channel = ?", channel)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *exampleRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.BrandVoiceExample{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
