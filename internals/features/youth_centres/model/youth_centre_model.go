// file: internals/features/youth_centres/model/youth_centre_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type YouthCentreModel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(120);not null;uniqueIndex"`
	Wilaya      *string   `json:"wilaya,omitempty" gorm:"type:varchar(80);index"`
	Commune     *string   `json:"commune,omitempty" gorm:"type:varchar(80)"`
	Address     *string   `json:"address,omitempty" gorm:"type:text"`
	Phone       *string   `json:"phone,omitempty" gorm:"type:varchar(30)"`
	Email       *string   `json:"email,omitempty" gorm:"type:varchar(150)"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Capacity    *int      `json:"capacity,omitempty"`
	IsActive    bool      `json:"is_active" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (YouthCentreModel) TableName() string { return "youth_centres" }
