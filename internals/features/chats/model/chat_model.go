package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatModel struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID  uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	AdminID  uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	Title    string    `json:"title" gorm:"type:varchar(200);not null"`
	IsActive bool      `json:"is_active" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (ChatModel) TableName() string { return "chats" }
