package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"youthcentre_backend/internals/features/admins/model"
)

type AnyObject = map[string]any

// UpdateSettingsRequest: absent sections are left untouched.
type UpdateSettingsRequest struct {
	NotificationSettings AnyObject `json:"notification_settings"`
	SystemSettings       AnyObject `json:"system_settings"`
	SecuritySettings     AnyObject `json:"security_settings"`
}

type SettingsResponse struct {
	AdminID              uuid.UUID  `json:"admin_id"`
	NotificationSettings AnyObject  `json:"notification_settings"`
	SystemSettings       AnyObject  `json:"system_settings"`
	SecuritySettings     AnyObject  `json:"security_settings,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

func decodeObject(raw []byte, fallback AnyObject) AnyObject {
	if len(raw) == 0 {
		return fallback
	}
	out := AnyObject{}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return fallback
	}
	return out
}

// ToSettingsResponse hides security_settings from regular admins.
func ToSettingsResponse(m model.AdminSettingModel, defaults model.AdminSettingModel, includeSecurity bool) SettingsResponse {
	resp := SettingsResponse{
		AdminID:              m.AdminID,
		NotificationSettings: decodeObject(m.NotificationSettings, decodeObject(defaults.NotificationSettings, AnyObject{})),
		SystemSettings:       decodeObject(m.SystemSettings, decodeObject(defaults.SystemSettings, AnyObject{})),
	}
	if includeSecurity {
		resp.SecuritySettings = decodeObject(m.SecuritySettings, decodeObject(defaults.SecuritySettings, AnyObject{}))
	}
	if !m.UpdatedAt.IsZero() {
		t := m.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}
