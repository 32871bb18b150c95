package service

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/admins/dto"
	"youthcentre_backend/internals/features/admins/model"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type SettingsStore interface {
	FindSettings(ctx context.Context, adminID uuid.UUID) (*model.AdminSettingModel, error)
	UpsertSettings(ctx context.Context, m *model.AdminSettingModel, columns []string) error
}

var DefaultSettings = model.AdminSettingModel{
	NotificationSettings: datatypes.JSON(`{"email_notifications":true,"inscription_alerts":true,"payment_alerts":true}`),
	SystemSettings:       datatypes.JSON(`{"language":"fr","timezone":"Africa/Algiers","items_per_page":20}`),
	SecuritySettings:     datatypes.JSON(`{"two_factor_required":false,"session_timeout_minutes":60}`),
}

type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context, a helperAuth.Actor) (dto.SettingsResponse, error) {
	m, err := s.store.FindSettings(ctx, a.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SettingsResponse{}, err
		}
		m = &model.AdminSettingModel{AdminID: a.ID}
	}
	return dto.ToSettingsResponse(*m, DefaultSettings, a.IsSuperAdmin), nil
}

func (s *SettingsService) Update(ctx context.Context, a helperAuth.Actor, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error) {
	if req.SecuritySettings != nil {
		if err := helperAuth.EnsureSuperAdmin(a, "change security settings"); err != nil {
			return dto.SettingsResponse{}, err
		}
	}

	m := model.AdminSettingModel{
		AdminID:              a.ID,
		NotificationSettings: DefaultSettings.NotificationSettings,
		SystemSettings:       DefaultSettings.SystemSettings,
		SecuritySettings:     DefaultSettings.SecuritySettings,
	}
	columns := make([]string, 0, 3)
	for _, sec := range []struct {
		col string
		in  dto.AnyObject
		dst *datatypes.JSON
	}{
		{"notification_settings", req.NotificationSettings, &m.NotificationSettings},
		{"system_settings", req.SystemSettings, &m.SystemSettings},
		{"security_settings", req.SecuritySettings, &m.SecuritySettings},
	} {
		if sec.in == nil {
			continue
		}
		raw, err := sonic.Marshal(sec.in)
		if err != nil {
			return dto.SettingsResponse{}, err
		}
		*sec.dst = datatypes.JSON(raw)
		columns = append(columns, sec.col)
	}

	if len(columns) > 0 {
		if err := s.store.UpsertSettings(ctx, &m, columns); err != nil {
			return dto.SettingsResponse{}, err
		}
	}
	return s.Get(ctx, a)
}
