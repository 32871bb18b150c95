// file: internals/features/activities/repository/activity_repository.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/constants"
	"youthcentre_backend/internals/features/activities/dto"
	"youthcentre_backend/internals/features/activities/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) List(ctx context.Context, kind model.ActivityKind, actor helperAuth.Actor, q dto.ListActivitiesQuery, p helper.Paging) ([]model.ActivityModel, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("kind = ?", kind).
		Scopes(helperAuth.ScopeOwned(actor, "admin_id"))

	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	if q.CenterID != nil {
		db = db.Where("center_id = ?", *q.CenterID)
	}
	switch q.Role {
	case constants.RoleSuperAdmin:
		db = db.Where("admin_id IN (SELECT id FROM admins WHERE is_super_admin = TRUE)")
	case constants.RoleAdmin:
		db = db.Where("admin_id IN (SELECT id FROM admins WHERE is_super_admin = FALSE)")
	}
	if q.Q != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Q)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ActivityModel
	if err := db.Order("starts_at DESC NULLS LAST, created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, kind model.ActivityKind, id uuid.UUID) (*model.ActivityModel, error) {
	var m model.ActivityModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ActivityRepository) Create(ctx context.Context, m *model.ActivityModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update writes the editable columns only; participants is left alone.
func (r *ActivityRepository) Update(ctx context.Context, m *model.ActivityModel) error {
	return r.db.WithContext(ctx).
		Model(m).
		Select(model.WritableColumns).
		Updates(m).Error
}

func (r *ActivityRepository) Delete(ctx context.Context, m *model.ActivityModel) error {
	return r.db.WithContext(ctx).Delete(m).Error
}
