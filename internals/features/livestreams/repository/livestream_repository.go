package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/livestreams/dto"
	"youthcentre_backend/internals/features/livestreams/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type LivestreamRepository struct {
	db *gorm.DB
}

func NewLivestreamRepository(db *gorm.DB) *LivestreamRepository {
	return &LivestreamRepository{db: db}
}

func (r *LivestreamRepository) List(ctx context.Context, actor helperAuth.Actor, q dto.ListLivestreamsQuery, p helper.Paging) ([]model.LivestreamModel, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.LivestreamModel{}).
		Scopes(helperAuth.ScopeOwnedOrActivityOwner(actor, "admin_id", "event_id"))
	if q.EventID != nil {
		db = db.Where("event_id = ?", *q.EventID)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.LivestreamModel
	if err := db.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *LivestreamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LivestreamModel, error) {
	var m model.LivestreamModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LivestreamRepository) EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error) {
	var a activityModel.ActivityModel
	if err := r.db.WithContext(ctx).
		Select("id", "admin_id").
		Where("id = ? AND kind = ?", eventID, activityModel.KindEvent).
		Take(&a).Error; err != nil {
		return uuid.Nil, err
	}
	return a.AdminID, nil
}

func (r *LivestreamRepository) Create(ctx context.Context, m *model.LivestreamModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update writes nullable timestamps explicitly so clearing them sticks.
func (r *LivestreamRepository) Update(ctx context.Context, m *model.LivestreamModel) error {
	return r.db.WithContext(ctx).
		Model(m).
		Select("title", "stream_url", "status", "started_at", "ended_at").
		Updates(m).Error
}

func (r *LivestreamRepository) Delete(ctx context.Context, m *model.LivestreamModel) error {
	return r.db.WithContext(ctx).Delete(m).Error
}
