package repository

import "github.com/burnashoff2016/Yandex-AI/entities"

type HistoryRepository interface {
	Create(g *entities.Generation) error
	ListByUser(userID uint, limit, offset int) ([]entities.Generation, error)
	FindByID(id, userID uint) (*entities.Generation, error)
	MarkSaved(id, userID uint, saved bool) error
	Delete(id, userID uint) error
}
