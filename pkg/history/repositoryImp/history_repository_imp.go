package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/history/repository"
)

type historyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HistoryRepository { return &historyRepo{db} }

func (r *historyRepo) Create(g *entities.Generation) error { return r.db.Create(g).Error }

func (r *historyRepo) ListByUser(userID uint, limit, offset int) ([]entities.Generation, error) {
	var out []entities.Generation
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *historyRepo) FindByID(id, userID uint) (*entities.Generation, error) {
	var g entities.Generation
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *historyRepo) MarkSaved(id, userID uint, saved bool) error {
	res := r.db.Model(&entities.Generation{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_saved", saved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *historyRepo) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Generation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
