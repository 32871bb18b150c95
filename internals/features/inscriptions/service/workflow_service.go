// file: internals/features/inscriptions/service/workflow_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/inscriptions/dto"
	"youthcentre_backend/internals/features/inscriptions/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
	"youthcentre_backend/internals/logger"
)

// TxStore is the slice of storage used inside the status transaction.
type TxStore interface {
	// LockForTransition loads the inscription and locks its parent activity row.
	LockForTransition(ctx context.Context, kind activityModel.ActivityKind, id uuid.UUID) (*model.InscriptionModel, *activityModel.ActivityModel, error)
	// LockActivity takes the same activity row lock without an inscription.
	LockActivity(ctx context.Context, id uuid.UUID) (*activityModel.ActivityModel, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string, at time.Time) error
	CountApproved(ctx context.Context, activityID uuid.UUID) (int64, error)
	SetParticipants(ctx context.Context, activityID uuid.UUID, n int) error
}

type Store interface {
	List(ctx context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery, p helper.Paging) ([]dto.InscriptionRow, int64, error)
	// ListAll returns at most limit rows; limit <= 0 means no limit.
	ListAll(ctx context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery, limit int) ([]dto.InscriptionRow, error)
	Participants(ctx context.Context, activityID uuid.UUID) ([]dto.InscriptionRow, error)
	FindActivity(ctx context.Context, kind activityModel.ActivityKind, id uuid.UUID) (*activityModel.ActivityModel, error)
	InTx(ctx context.Context, fn func(tx TxStore) error) error
}

// WorkflowService runs the approval workflow for every activity kind.
type WorkflowService struct {
	store     Store
	validate  *validator.Validate
	now       func() time.Time
	log       *zap.SugaredLogger
	exportMax int
}

func NewWorkflowService(store Store, v *validator.Validate) *WorkflowService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &WorkflowService{store: store, validate: v, now: time.Now, log: logger.Named("inscriptions"), exportMax: MaxExportRows}
}

func (s *WorkflowService) List(ctx context.Context, spec activityModel.KindSpec, actor helperAuth.Actor, q dto.ListInscriptionsQuery, p helper.Paging) ([]dto.InscriptionRow, int64, error) {
	q.Normalize()
	if err := validateStatusFilter(q.Status); err != nil {
		return nil, 0, err
	}
	return s.store.List(ctx, spec.Kind, actor, q, p)
}

// UpdateStatus overwrites the status (any target from any state) and, when
// the move crosses "approved", recounts the activity's participants inside
// the same transaction while the activity row is locked.
func (s *WorkflowService) UpdateStatus(ctx context.Context, spec activityModel.KindSpec, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateInscriptionStatusRequest) (dto.StatusChange, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return dto.StatusChange{}, err
	}

	var out dto.StatusChange
	err := s.store.InTx(ctx, func(tx TxStore) error {
		ins, act, err := tx.LockForTransition(ctx, spec.Kind, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NotFound("inscription not found")
			}
			return err
		}
		if err := helperAuth.EnsureCanModify(actor, act.AdminID, spec.InscriptionLabel()); err != nil {
			return err
		}

		at := s.now()
		if err := tx.SetStatus(ctx, ins.ID, req.Status, at); err != nil {
			return err
		}

		out = dto.StatusChange{
			InscriptionID:  ins.ID,
			ActivityID:     act.ID,
			PreviousStatus: ins.Status,
			Status:         req.Status,
			Participants:   act.Participants,
			UpdatedAt:      at,
		}
		if !model.AffectsParticipants(ins.Status, req.Status) {
			return nil
		}

		n, err := tx.CountApproved(ctx, act.ID)
		if err != nil {
			return err
		}
		if err := tx.SetParticipants(ctx, act.ID, int(n)); err != nil {
			return err
		}
		out.Participants = int(n)
		out.Recounted = true
		return nil
	})
	if err != nil {
		return dto.StatusChange{}, err
	}

	s.log.Infow("inscription status changed",
		"kind", spec.Kind, "inscription_id", out.InscriptionID, "admin_id", actor.ID,
		"from", out.PreviousStatus, "to", out.Status, "participants", out.Participants)
	return out, nil
}

// Participants lists approved inscriptions of one activity.
func (s *WorkflowService) Participants(ctx context.Context, spec activityModel.KindSpec, actor helperAuth.Actor, activityID uuid.UUID) (*activityModel.ActivityModel, []dto.InscriptionRow, error) {
	act, err := s.store.FindActivity(ctx, spec.Kind, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.NotFound(spec.Singular + " not found")
		}
		return nil, nil, err
	}
	if err := helperAuth.EnsureCanView(actor, act.AdminID, spec.Label); err != nil {
		return nil, nil, err
	}
	rows, err := s.store.Participants(ctx, act.ID)
	if err != nil {
		return nil, nil, err
	}
	return act, rows, nil
}

func validateStatusFilter(status string) error {
	switch status {
	case "", model.StatusPending, model.StatusApproved, model.StatusRejected, model.StatusAttended:
		return nil
	}
	fe := helper.FieldErrors{}
	fe.Add("status", "The selected status is invalid. Allowed: pending, approved, rejected, attended.")
	return fe
}
