package chatlog

import (
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/models"
)

type Store interface {
	SaveChatLog(entry *models.ChatLog) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SaveChatLog(entry *models.ChatLog) error {
	return s.db.Create(entry).Error
}
