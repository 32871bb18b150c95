package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthcentre_backend/internals/features/admins/model"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AdminModel, error) {
	var m model.AdminModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AdminRepository) ListByCentre(ctx context.Context, centreID uuid.UUID) ([]model.AdminModel, error) {
	var rows []model.AdminModel
	err := r.db.WithContext(ctx).
		Where("youth_centre_id = ?", centreID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// ListUnassigned: active regular admins without a centre.
func (r *AdminRepository) ListUnassigned(ctx context.Context) ([]model.AdminModel, error) {
	var rows []model.AdminModel
	err := r.db.WithContext(ctx).
		Where("youth_centre_id IS NULL AND is_super_admin = FALSE AND is_active = TRUE").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

// BindCentre binds the admin only while it is still unassigned; false means
// the admin was bound elsewhere in the meantime.
func (r *AdminRepository) BindCentre(ctx context.Context, adminID, centreID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ? AND youth_centre_id IS NULL", adminID).
		Update("youth_centre_id", centreID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UnbindCentre releases the admin only while it is still bound to centreID.
func (r *AdminRepository) UnbindCentre(ctx context.Context, adminID, centreID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ? AND youth_centre_id = ?", adminID, centreID).
		Update("youth_centre_id", nil)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

/* ===================== settings ===================== */

func (r *AdminRepository) FindSettings(ctx context.Context, adminID uuid.UUID) (*model.AdminSettingModel, error) {
	var m model.AdminSettingModel
	if err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertSettings writes only the listed columns on conflict.
func (r *AdminRepository) UpsertSettings(ctx context.Context, m *model.AdminSettingModel, columns []string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(m).Error
}
