// file: internals/features/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel: operator account. Super-admins are never bound to a centre;
// a regular admin is bound to at most one.
type AdminModel struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string     `json:"name" gorm:"type:varchar(150);not null"`
	Email         string     `json:"email" gorm:"type:varchar(150);not null;uniqueIndex"`
	PasswordHash  string     `json:"-" gorm:"column:password_hash;type:text;not null"`
	IsSuperAdmin  bool       `json:"is_super_admin" gorm:"not null;default:false"`
	YouthCentreID *uuid.UUID `json:"youth_centre_id" gorm:"type:uuid;index"`
	IsActive      bool       `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (AdminModel) TableName() string { return "admins" }
