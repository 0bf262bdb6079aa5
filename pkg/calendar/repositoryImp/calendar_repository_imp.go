package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/calendar/repository"
)

type calendarRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CalendarRepository { return &calendarRepo{db} }

func (r *calendarRepo) Create(p *entities.ScheduledPost) error { return r.db.Create(p).Error }

func (r *calendarRepo) List(userID uint, f repository.ListFilter) ([]entities.ScheduledPost, error) {
	q := r.db.Where("user_id = ?", userID).Order("scheduled_date")
	if !f.From.IsZero() {
		q = q.Where("scheduled_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("scheduled_date <= ?", f.To)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Channel != "" {
		q = q.Where("channel = ?", f.Channel)
	}
	var out []entities.ScheduledPost
	err := q.Find(&out).Error
	return out, err
}

func (r *calendarRepo) FindByID(id, userID uint) (*entities.ScheduledPost, error) {
	var p entities.ScheduledPost
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *calendarRepo) Update(p *entities.ScheduledPost) error { return r.db.Save(p).Error }

func (r *calendarRepo) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&entities.ScheduledPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
