package repository

import (
	"time"

	"github.com/burnashoff2016/Yandex-AI/entities"
)

// ListFilter narrows the calendar listing. Zero values mean "no
// constraint".
type ListFilter struct {
	From    time.Time
	To      time.Time
	Status  string
	Channel string
}

type CalendarRepository interface {
	Create(p *entities.ScheduledPost) error
	List(userID uint, f ListFilter) ([]entities.ScheduledPost, error)
	FindByID(id, userID uint) (*entities.ScheduledPost, error)
	Update(p *entities.ScheduledPost) error
	Delete(id, userID uint) error
}
