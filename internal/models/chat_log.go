package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatLog struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Email string `gorm:"size:100;index" json:"email,omitempty"`

	Messages        []ChatMessage `gorm:"serializer:json" json:"messages"`
	FaceDescription string        `gorm:"size:500" json:"faceDescription,omitempty"`
	Reply           string        `gorm:"type:text" json:"reply"`
	RejectReason    string        `gorm:"size:50" json:"rejectReason,omitempty"`
	Saved           bool          `gorm:"default:false" json:"saved"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c *ChatLog) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
