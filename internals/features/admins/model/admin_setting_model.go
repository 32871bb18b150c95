package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdminSettingModel struct {
	AdminID              uuid.UUID      `json:"admin_id" gorm:"type:uuid;primaryKey"`
	NotificationSettings datatypes.JSON `json:"notification_settings" gorm:"type:jsonb;not null;default:'{}'"`
	SystemSettings       datatypes.JSON `json:"system_settings" gorm:"type:jsonb;not null;default:'{}'"`
	SecuritySettings     datatypes.JSON `json:"security_settings" gorm:"type:jsonb;not null;default:'{}'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (AdminSettingModel) TableName() string { return "admin_settings" }
