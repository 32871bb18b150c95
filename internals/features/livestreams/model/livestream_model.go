package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusEnded     = "ended"
)

type LivestreamModel struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID   uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	AdminID   uuid.UUID  `json:"admin_id" gorm:"type:uuid;not null;index"`
	Title     string     `json:"title" gorm:"type:varchar(200);not null"`
	StreamURL *string    `json:"stream_url,omitempty" gorm:"type:text"`
	Status    string     `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index;check:status IN ('scheduled','live','ended')"`
	StartedAt *time.Time `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (LivestreamModel) TableName() string { return "livestreams" }
