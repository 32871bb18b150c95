package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the end-user profile. The admin surface only reads it.
type UserModel struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName           string    `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName            string    `json:"last_name" gorm:"type:varchar(100);not null"`
	Email               *string   `json:"email,omitempty" gorm:"type:varchar(150);uniqueIndex"`
	Phone               *string   `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Wilaya              *string   `json:"wilaya,omitempty" gorm:"type:varchar(80);index"`
	Commune             *string   `json:"commune,omitempty" gorm:"type:varchar(80)"`
	Score               int       `json:"score" gorm:"not null;default:0"`
	AttendedEventsCount int       `json:"attended_events_count" gorm:"not null;default:0"`
	IsActive            bool      `json:"is_active" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (UserModel) TableName() string { return "users" }
