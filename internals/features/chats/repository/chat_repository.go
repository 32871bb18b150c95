package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/chats/dto"
	"youthcentre_backend/internals/features/chats/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) List(ctx context.Context, actor helperAuth.Actor, q dto.ListChatsQuery, p helper.Paging) ([]model.ChatModel, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.ChatModel{}).
		Scopes(helperAuth.ScopeOwnedOrActivityOwner(actor, "admin_id", "event_id"))

	if q.EventID != nil {
		db = db.Where("event_id = ?", *q.EventID)
	}
	if q.IsActive != nil {
		db = db.Where("is_active = ?", *q.IsActive)
	}
	if q.Q != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Q)+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.ChatModel
	if err := db.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *ChatRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ChatModel, error) {
	var m model.ChatModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ChatRepository) EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error) {
	var a activityModel.ActivityModel
	if err := r.db.WithContext(ctx).
		Select("id", "admin_id").
		Where("id = ? AND kind = ?", eventID, activityModel.KindEvent).
		First(&a).Error; err != nil {
		return uuid.Nil, err
	}
	return a.AdminID, nil
}

func (r *ChatRepository) Create(ctx context.Context, m *model.ChatModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) Update(ctx context.Context, m *model.ChatModel) error {
	return r.db.WithContext(ctx).Model(m).Select("title", "is_active").Updates(m).Error
}

func (r *ChatRepository) Delete(ctx context.Context, m *model.ChatModel) error {
	return r.db.WithContext(ctx).Delete(m).Error
}
