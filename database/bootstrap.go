package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/burnashoff2016/Yandex-AI/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Generation{},
		&entities.BrandVoice{},
		&entities.BrandVoiceExample{},
		&entities.ScheduledPost{},
		&entities.ImageSettings{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
