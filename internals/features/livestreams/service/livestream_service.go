package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/livestreams/dto"
	"youthcentre_backend/internals/features/livestreams/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type Store interface {
	List(ctx context.Context, actor helperAuth.Actor, q dto.ListLivestreamsQuery, p helper.Paging) ([]model.LivestreamModel, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.LivestreamModel, error)
	EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error)
	Create(ctx context.Context, m *model.LivestreamModel) error
	Update(ctx context.Context, m *model.LivestreamModel) error
	Delete(ctx context.Context, m *model.LivestreamModel) error
}

type LivestreamService struct {
	store    Store
	validate *validator.Validate
	now      func() time.Time
}

func NewLivestreamService(store Store, v *validator.Validate) *LivestreamService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &LivestreamService{store: store, validate: v, now: time.Now}
}

func (s *LivestreamService) List(ctx context.Context, actor helperAuth.Actor, q dto.ListLivestreamsQuery, p helper.Paging) ([]model.LivestreamModel, int64, error) {
	switch q.Status {
	case "", model.StatusScheduled, model.StatusLive, model.StatusEnded:
	default:
		fe := helper.FieldErrors{}
		fe.Add("status", "The selected status is invalid. Allowed: scheduled, live, ended.")
		return nil, 0, fe
	}
	return s.store.List(ctx, actor, q, p)
}

func (s *LivestreamService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*model.LivestreamModel, error) {
	m, owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin && m.AdminID != actor.ID && owner != actor.ID {
		return nil, helper.Forbidden("You may only view your own livestreams")
	}
	return m, nil
}

func (s *LivestreamService) Create(ctx context.Context, actor helperAuth.Actor, req dto.CreateLivestreamRequest) (*model.LivestreamModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}
	if req.EventID == uuid.Nil {
		fe := helper.FieldErrors{}
		fe.Add("event_id", "The event_id field is required.")
		return nil, fe
	}
	owner, err := s.store.EventOwner(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fe := helper.FieldErrors{}
			fe.Add("event_id", "The selected event_id is invalid.")
			return nil, fe
		}
		return nil, err
	}
	if err := helperAuth.EnsureCanModify(actor, owner, "events"); err != nil {
		return nil, err
	}

	m := model.LivestreamModel{
		ID:        uuid.New(),
		EventID:   req.EventID,
		AdminID:   actor.ID,
		Title:     req.Title,
		StreamURL: req.StreamURL,
	}
	status := req.Status
	if status == "" {
		status = model.StatusScheduled
	}
	ApplyStatus(&m, status, s.now())

	if err := s.store.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *LivestreamService) Update(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateLivestreamRequest) (*model.LivestreamModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}
	m, owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCanModifyAttached(actor, m.AdminID, owner, "livestreams"); err != nil {
		return nil, err
	}

	req.Apply(m)
	if req.Status != nil && *req.Status != m.Status {
		ApplyStatus(m, *req.Status, s.now())
	}
	if err := s.store.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *LivestreamService) Delete(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) error {
	m, owner, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCanModifyAttached(actor, m.AdminID, owner, "livestreams"); err != nil {
		return err
	}
	return s.store.Delete(ctx, m)
}

func (s *LivestreamService) load(ctx context.Context, id uuid.UUID) (*model.LivestreamModel, uuid.UUID, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, helper.NotFound("livestream not found")
		}
		return nil, uuid.Nil, err
	}
	owner, err := s.store.EventOwner(ctx, m.EventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, uuid.Nil, err
	}
	return m, owner, nil
}
