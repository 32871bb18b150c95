// file: internals/features/activities/service/activity_service.go
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/constants"
	"youthcentre_backend/internals/features/activities/dto"
	"youthcentre_backend/internals/features/activities/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type Store interface {
	List(ctx context.Context, kind model.ActivityKind, actor helperAuth.Actor, q dto.ListActivitiesQuery, p helper.Paging) ([]model.ActivityModel, int64, error)
	FindByID(ctx context.Context, kind model.ActivityKind, id uuid.UUID) (*model.ActivityModel, error)
	Create(ctx context.Context, m *model.ActivityModel) error
	Update(ctx context.Context, m *model.ActivityModel) error
	Delete(ctx context.Context, m *model.ActivityModel) error
}

// ActivityService is shared by the four activity kinds.
type ActivityService struct {
	store    Store
	validate *validator.Validate
}

func NewActivityService(store Store, v *validator.Validate) *ActivityService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ActivityService{store: store, validate: v}
}

func (s *ActivityService) List(ctx context.Context, spec model.KindSpec, actor helperAuth.Actor, q dto.ListActivitiesQuery, p helper.Paging) ([]model.ActivityModel, int64, error) {
	q.Normalize()
	if q.Role != "" && !constants.IsAdminRole(q.Role) {
		fe := helper.FieldErrors{}
		fe.Add("role", "The selected role is invalid. Allowed: "+constants.AdminRolesList()+".")
		return nil, 0, fe
	}
	return s.store.List(ctx, spec.Kind, actor, q, p)
}

func (s *ActivityService) Get(ctx context.Context, spec model.KindSpec, actor helperAuth.Actor, id uuid.UUID) (*model.ActivityModel, error) {
	m, err := s.find(ctx, spec, id)
	if err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCanView(actor, m.AdminID, spec.Label); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ActivityService) Create(ctx context.Context, spec model.KindSpec, actor helperAuth.Actor, req dto.CreateActivityRequest) (*model.ActivityModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}

	m := req.ToModel(spec.Kind)
	if err := checkSchedule(&m); err != nil {
		return nil, err
	}
	if spec.Kind == model.KindEvent {
		applyEventDefaults(&m)
		if err := helperAuth.EnsureEventContent(actor, *m.EventType, *m.AttendanceType); err != nil {
			return nil, err
		}
	}

	centre, err := helperAuth.ResolveCentre(actor, req.CenterID)
	if err != nil {
		return nil, err
	}
	m.CenterID = centre
	m.AdminID = actor.ID

	NormalizePricing(&m)
	if err := s.store.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ActivityService) Update(ctx context.Context, spec model.KindSpec, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateActivityRequest) (*model.ActivityModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}

	m, err := s.find(ctx, spec, id)
	if err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCanModify(actor, m.AdminID, spec.Label); err != nil {
		return nil, err
	}

	req.Apply(m)
	if err := checkSchedule(m); err != nil {
		return nil, err
	}
	if spec.Kind == model.KindEvent {
		applyEventDefaults(m)
		if err := helperAuth.EnsureEventContent(actor, *m.EventType, *m.AttendanceType); err != nil {
			return nil, err
		}
	}
	if req.CenterID != nil {
		centre, err := helperAuth.ResolveCentre(actor, req.CenterID)
		if err != nil {
			return nil, err
		}
		m.CenterID = centre
	}

	NormalizePricing(m)
	if err := s.store.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ActivityService) Delete(ctx context.Context, spec model.KindSpec, actor helperAuth.Actor, id uuid.UUID) error {
	m, err := s.find(ctx, spec, id)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCanModify(actor, m.AdminID, spec.Label); err != nil {
		return err
	}
	return s.store.Delete(ctx, m)
}

func (s *ActivityService) find(ctx context.Context, spec model.KindSpec, id uuid.UUID) (*model.ActivityModel, error) {
	m, err := s.store.FindByID(ctx, spec.Kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(spec.Singular + " not found")
		}
		return nil, err
	}
	return m, nil
}

func applyEventDefaults(m *model.ActivityModel) {
	if m.EventType == nil || *m.EventType == "" {
		v := helperAuth.EventTypeLocal
		m.EventType = &v
	}
	if m.AttendanceType == nil || *m.AttendanceType == "" {
		v := helperAuth.AttendanceTypeInPerson
		m.AttendanceType = &v
	}
}

func checkSchedule(m *model.ActivityModel) error {
	if m.StartsAt != nil && m.EndsAt != nil && m.EndsAt.Before(*m.StartsAt) {
		fe := helper.FieldErrors{}
		fe.Add("ends_at", "The ends_at must be a date after or equal to starts_at.")
		return fe
	}
	return nil
}
