// file: internals/features/inscriptions/repository/inscription_repository.go
package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/inscriptions/dto"
	"youthcentre_backend/internals/features/inscriptions/model"
	"youthcentre_backend/internals/features/inscriptions/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

const rowColumns = `
	i.id, i.kind, i.activity_id, a.title AS activity_title,
	i.user_id, COALESCE(u.first_name, '') AS user_first_name, COALESCE(u.last_name, '') AS user_last_name,
	u.email AS user_email, u.phone AS user_phone, u.wilaya AS user_wilaya, u.commune AS user_commune,
	i.status, i.notes, i.created_at, i.updated_at`

type InscriptionRepository struct {
	db *gorm.DB
}

func NewInscriptionRepository(db *gorm.DB) *InscriptionRepository {
	return &InscriptionRepository{db: db}
}

func (r *InscriptionRepository) base(ctx context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery) *gorm.DB {
	db := r.db.WithContext(ctx).
		Table("inscriptions AS i").
		Joins("JOIN activities a ON a.id = i.activity_id AND a.deleted_at IS NULL").
		Joins("LEFT JOIN users u ON u.id = i.user_id").
		Where("i.kind = ?", kind).
		Scopes(helperAuth.ScopeOwned(actor, "a.admin_id"))

	if q.ActivityID != nil {
		db = db.Where("i.activity_id = ?", *q.ActivityID)
	}
	if q.UserID != nil {
		db = db.Where("i.user_id = ?", *q.UserID)
	}
	if q.Status != "" {
		db = db.Where("i.status = ?", q.Status)
	}
	if q.Q != "" {
		s := "%" + strings.ToLower(q.Q) + "%"
		db = db.Where("(LOWER(u.first_name) LIKE ? OR LOWER(u.last_name) LIKE ? OR LOWER(COALESCE(u.email,'')) LIKE ?)", s, s, s)
	}
	return db
}

func (r *InscriptionRepository) List(ctx context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery, p helper.Paging) ([]dto.InscriptionRow, int64, error) {
	var total int64
	if err := r.base(ctx, kind, actor, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []dto.InscriptionRow{}
	err := r.base(ctx, kind, actor, q).
		Select(rowColumns).
		Order("i.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error
	return rows, total, err
}

func (r *InscriptionRepository) ListAll(ctx context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery, limit int) ([]dto.InscriptionRow, error) {
	rows := []dto.InscriptionRow{}
	db := r.base(ctx, kind, actor, q).
		Select(rowColumns).
		Order("a.title ASC, u.last_name ASC, u.first_name ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Scan(&rows).Error
	return rows, err
}

func (r *InscriptionRepository) Participants(ctx context.Context, activityID uuid.UUID) ([]dto.InscriptionRow, error) {
	rows := []dto.InscriptionRow{}
	err := r.db.WithContext(ctx).
		Table("inscriptions AS i").
		Joins("JOIN activities a ON a.id = i.activity_id").
		Joins("LEFT JOIN users u ON u.id = i.user_id").
		Where("i.activity_id = ? AND i.status = ?", activityID, model.StatusApproved).
		Select(rowColumns).
		Order("u.last_name ASC, u.first_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *InscriptionRepository) FindActivity(ctx context.Context, kind activityModel.ActivityKind, id uuid.UUID) (*activityModel.ActivityModel, error) {
	var m activityModel.ActivityModel
	if err := r.db.WithContext(ctx).Where("id = ? AND kind = ?", id, kind).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// InTx runs fn in one database transaction; any error rolls everything back.
func (r *InscriptionRepository) InTx(ctx context.Context, fn func(tx service.TxStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txStore{tx: tx})
	})
}

/* =========================================================
   Transaction-bound store
========================================================= */

type txStore struct {
	tx *gorm.DB
}

func (s *txStore) LockForTransition(ctx context.Context, kind activityModel.ActivityKind, id uuid.UUID) (*model.InscriptionModel, *activityModel.ActivityModel, error) {
	var ins model.InscriptionModel
	if err := s.tx.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind).
		First(&ins).Error; err != nil {
		return nil, nil, err
	}

	// activity first, then re-read the inscription under the same lock order
	var act activityModel.ActivityModel
	if err := s.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND kind = ?", ins.ActivityID, kind).
		First(&act).Error; err != nil {
		return nil, nil, err
	}
	if err := s.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&ins).Error; err != nil {
		return nil, nil, err
	}
	return &ins, &act, nil
}

func (s *txStore) LockActivity(ctx context.Context, id uuid.UUID) (*activityModel.ActivityModel, error) {
	var act activityModel.ActivityModel
	if err := s.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "participants").
		Where("id = ?", id).
		First(&act).Error; err != nil {
		return nil, err
	}
	return &act, nil
}

func (s *txStore) SetStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) error {
	return s.tx.WithContext(ctx).
		Model(&model.InscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": at}).Error
}

func (s *txStore) CountApproved(ctx context.Context, activityID uuid.UUID) (int64, error) {
	var n int64
	err := s.tx.WithContext(ctx).
		Model(&model.InscriptionModel{}).
		Where("activity_id = ? AND status = ?", activityID, model.StatusApproved).
		Count(&n).Error
	return n, err
}

func (s *txStore) SetParticipants(ctx context.Context, activityID uuid.UUID, n int) error {
	return s.tx.WithContext(ctx).
		Model(&activityModel.ActivityModel{}).
		Where("id = ?", activityID).
		UpdateColumn("participants", n).Error
}
