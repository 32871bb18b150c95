// file: internals/features/payments/repository/payment_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/payments/dto"
	"youthcentre_backend/internals/features/payments/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

const rowColumns = `
	p.id, p.user_id, COALESCE(u.first_name, '') AS user_first_name, COALESCE(u.last_name, '') AS user_last_name,
	p.event_id, COALESCE(a.title, '') AS event_title,
	p.amount, p.method, p.reference, p.status, p.paid_at, p.notes, p.created_at, p.updated_at`

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) base(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery) *gorm.DB {
	db := r.db.WithContext(ctx).
		Table("payments AS p").
		Joins("LEFT JOIN activities a ON a.id = p.event_id").
		Joins("LEFT JOIN users u ON u.id = p.user_id").
		Scopes(helperAuth.ScopeOwned(actor, "a.admin_id"))

	if q.EventID != nil {
		db = db.Where("p.event_id = ?", *q.EventID)
	}
	if q.UserID != nil {
		db = db.Where("p.user_id = ?", *q.UserID)
	}
	if q.Status != "" {
		db = db.Where("p.status = ?", q.Status)
	}
	if q.From != nil {
		db = db.Where("p.created_at >= ?", *q.From)
	}
	if q.To != nil {
		db = db.Where("p.created_at < ?", *q.To)
	}
	return db
}

func (r *PaymentRepository) List(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery, p helper.Paging) ([]dto.PaymentRow, int64, error) {
	var total int64
	if err := r.base(ctx, actor, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []dto.PaymentRow{}
	err := r.base(ctx, actor, q).
		Select(rowColumns).
		Order("p.created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error
	return rows, total, err
}

func (r *PaymentRepository) Find(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*dto.PaymentRow, error) {
	var rows []dto.PaymentRow
	if err := r.base(ctx, actor, dto.ListPaymentsQuery{}).
		Where("p.id = ?", id).
		Select(rowColumns).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *PaymentRepository) Totals(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery) ([]dto.StatusTotal, error) {
	var out []dto.StatusTotal
	err := r.base(ctx, actor, q).
		Select("p.status AS status, COUNT(*) AS count, COALESCE(SUM(p.amount), 0) AS amount").
		Group("p.status").
		Scan(&out).Error
	return out, err
}

func (r *PaymentRepository) UpdateLocked(ctx context.Context, id uuid.UUID, fn func(p *model.PaymentModel, eventOwner uuid.UUID) error) (*model.PaymentModel, error) {
	var out model.PaymentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&p).Error; err != nil {
			return err
		}

		var event activityModel.ActivityModel
		if err := tx.Unscoped().
			Select("id", "admin_id").
			Where("id = ?", p.EventID).
			First(&event).Error; err != nil {
			return err
		}

		if err := fn(&p, event.AdminID); err != nil {
			return err
		}

		if err := tx.Model(&model.PaymentModel{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"status":     p.Status,
				"paid_at":    p.PaidAt,
				"notes":      p.Notes,
				"updated_at": p.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
