package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/users/dto"
	"youthcentre_backend/internals/features/users/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context, actor helperAuth.Actor, q dto.ListUsersQuery, p helper.Paging) ([]model.UserModel, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Scopes(helperAuth.ScopeRegisteredWithOwner(actor, "users.id"))

	if q.Wilaya != "" {
		db = db.Where("LOWER(wilaya) = ?", strings.ToLower(q.Wilaya))
	}
	if q.Commune != "" {
		db = db.Where("LOWER(commune) = ?", strings.ToLower(q.Commune))
	}
	if q.Q != "" {
		s := "%" + strings.ToLower(q.Q) + "%"
		db = db.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(COALESCE(email,'')) LIKE ?)", s, s, s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.UserModel
	if err := db.Order("last_name ASC, first_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *UserRepository) Find(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).
		Scopes(helperAuth.ScopeRegisteredWithOwner(actor, "users.id")).
		Where("users.id = ?", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *UserRepository) Inscriptions(ctx context.Context, actor helperAuth.Actor, userID uuid.UUID) ([]dto.UserInscription, error) {
	var rows []dto.UserInscription
	err := r.db.WithContext(ctx).
		Table("inscriptions i").
		Select("i.id, i.activity_id, a.kind AS activity_kind, a.title AS activity_title, i.status, i.created_at").
		Joins("JOIN activities a ON a.id = i.activity_id AND a.deleted_at IS NULL").
		Where("i.user_id = ?", userID).
		Scopes(helperAuth.ScopeOwned(actor, "a.admin_id")).
		Order("i.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
