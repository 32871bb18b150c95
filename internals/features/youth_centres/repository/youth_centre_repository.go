package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	adminModel "youthcentre_backend/internals/features/admins/model"
	"youthcentre_backend/internals/features/youth_centres/dto"
	"youthcentre_backend/internals/features/youth_centres/model"
	helper "youthcentre_backend/internals/helpers"
)

const slugMaxLen = 120

type YouthCentreRepository struct {
	db *gorm.DB
}

func NewYouthCentreRepository(db *gorm.DB) *YouthCentreRepository {
	return &YouthCentreRepository{db: db}
}

func (r *YouthCentreRepository) List(ctx context.Context, only *uuid.UUID, q dto.ListYouthCentresQuery, p helper.Paging) ([]model.YouthCentreModel, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.YouthCentreModel{})
	if only != nil {
		db = db.Where("id = ?", *only)
	}
	if q.Wilaya != "" {
		db = db.Where("LOWER(wilaya) = ?", strings.ToLower(q.Wilaya))
	}
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		db = db.Where("(LOWER(name) LIKE ? OR LOWER(commune) LIKE ?)", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.YouthCentreModel
	if err := db.Order("name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *YouthCentreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.YouthCentreModel, error) {
	var m model.YouthCentreModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UniqueSlug checks soft-deleted rows too; the unique index covers them.
func (r *YouthCentreRepository) UniqueSlug(ctx context.Context, name string, exceptID *uuid.UUID) (string, error) {
	var except any
	if exceptID != nil {
		except = *exceptID
	}
	return helper.EnsureUniqueSlugCI(ctx, r.db, "youth_centres", "slug", helper.Slugify(name, slugMaxLen), except, slugMaxLen)
}

func (r *YouthCentreRepository) CreateAndBind(ctx context.Context, m *model.YouthCentreModel, bindAdmin *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if bindAdmin == nil {
			return nil
		}
		res := tx.Model(&adminModel.AdminModel{}).
			Where("id = ? AND youth_centre_id IS NULL", *bindAdmin).
			Update("youth_centre_id", m.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.Unprocessable("You are already assigned to a youth centre")
		}
		return nil
	})
}

func (r *YouthCentreRepository) Update(ctx context.Context, m *model.YouthCentreModel) error {
	return r.db.WithContext(ctx).
		Model(m).
		Select("name", "slug", "wilaya", "commune", "address", "phone", "email", "description", "capacity", "is_active").
		Updates(m).Error
}

func (r *YouthCentreRepository) DeleteAndUnbind(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	var released []uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&adminModel.AdminModel{}).
			Where("youth_centre_id = ?", id).
			Pluck("id", &released).Error; err != nil {
			return err
		}
		if len(released) > 0 {
			if err := tx.Model(&adminModel.AdminModel{}).
				Where("id IN ?", released).
				Update("youth_centre_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.YouthCentreModel{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return released, nil
}
