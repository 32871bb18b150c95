// file: internals/features/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/payments/dto"
	"youthcentre_backend/internals/features/payments/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type Store interface {
	List(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery, p helper.Paging) ([]dto.PaymentRow, int64, error)
	Find(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*dto.PaymentRow, error)
	Totals(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery) ([]dto.StatusTotal, error)
	// UpdateLocked loads the payment FOR UPDATE with its event owner, runs fn
	// and persists status, paid_at, notes and updated_at when fn succeeds.
	UpdateLocked(ctx context.Context, id uuid.UUID, fn func(p *model.PaymentModel, eventOwner uuid.UUID) error) (*model.PaymentModel, error)
}

type PaymentService struct {
	store    Store
	validate *validator.Validate
	now      func() time.Time
}

func NewPaymentService(store Store, v *validator.Validate) *PaymentService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &PaymentService{store: store, validate: v, now: time.Now}
}

func (s *PaymentService) List(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery, p helper.Paging) ([]dto.PaymentRow, int64, error) {
	if err := validateFilters(q); err != nil {
		return nil, 0, err
	}
	return s.store.List(ctx, actor, q, p)
}

// Get: rows outside the caller's scope read as not found.
func (s *PaymentService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*dto.PaymentRow, error) {
	row, err := s.store.Find(ctx, actor, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("payment not found")
		}
		return nil, err
	}
	return row, nil
}

func (s *PaymentService) Summary(ctx context.Context, actor helperAuth.Actor, q dto.ListPaymentsQuery) (dto.PaymentSummary, error) {
	if err := validateFilters(q); err != nil {
		return dto.PaymentSummary{}, err
	}
	totals, err := s.store.Totals(ctx, actor, q)
	if err != nil {
		return dto.PaymentSummary{}, err
	}
	return dto.BuildSummary(totals), nil
}

func (s *PaymentService) UpdateStatus(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.UpdatePaymentStatusRequest) (*model.PaymentModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}

	m, err := s.store.UpdateLocked(ctx, id, func(p *model.PaymentModel, eventOwner uuid.UUID) error {
		if err := helperAuth.EnsureCanModify(actor, eventOwner, "event payments"); err != nil {
			return err
		}
		now := s.now()
		ApplyStatus(p, req.Status, now)
		p.UpdatedAt = now
		if req.Notes != nil {
			p.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("payment not found")
		}
		return nil, err
	}
	return m, nil
}

func validateFilters(q dto.ListPaymentsQuery) error {
	fe := helper.FieldErrors{}
	switch q.Status {
	case "", model.StatusPending, model.StatusCompleted, model.StatusFailed, model.StatusRefunded:
	default:
		fe.Add("status", "The selected status is invalid. Allowed: pending, completed, failed, refunded.")
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		fe.Add("to", "The to date must be after or equal to from.")
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}
