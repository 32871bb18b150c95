// file: internals/features/youth_centres/service/youth_centre_service.go
package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adminModel "youthcentre_backend/internals/features/admins/model"
	"youthcentre_backend/internals/features/youth_centres/dto"
	"youthcentre_backend/internals/features/youth_centres/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
	"youthcentre_backend/internals/logger"
)

type CentreStore interface {
	List(ctx context.Context, only *uuid.UUID, q dto.ListYouthCentresQuery, p helper.Paging) ([]model.YouthCentreModel, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.YouthCentreModel, error)
	UniqueSlug(ctx context.Context, name string, exceptID *uuid.UUID) (string, error)
	// CreateAndBind inserts the centre and, when bindAdmin is set, binds that
	// admin to it in the same transaction.
	CreateAndBind(ctx context.Context, m *model.YouthCentreModel, bindAdmin *uuid.UUID) error
	Update(ctx context.Context, m *model.YouthCentreModel) error
	// DeleteAndUnbind soft-deletes the centre and releases its admins.
	DeleteAndUnbind(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}

type AdminStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*adminModel.AdminModel, error)
	ListByCentre(ctx context.Context, centreID uuid.UUID) ([]adminModel.AdminModel, error)
	ListUnassigned(ctx context.Context) ([]adminModel.AdminModel, error)
	// BindCentre and UnbindCentre are conditional writes: they report false
	// when the admin's binding changed after it was read.
	BindCentre(ctx context.Context, adminID, centreID uuid.UUID) (bool, error)
	UnbindCentre(ctx context.Context, adminID, centreID uuid.UUID) (bool, error)
}

// ScopeInvalidator drops cached admin scopes after binding changes.
type ScopeInvalidator interface {
	Invalidate(ctx context.Context, adminIDs ...uuid.UUID)
}

type YouthCentreService struct {
	centres  CentreStore
	admins   AdminStore
	scopes   ScopeInvalidator
	validate *validator.Validate
	log      *zap.SugaredLogger
}

func NewYouthCentreService(centres CentreStore, admins AdminStore, scopes ScopeInvalidator, v *validator.Validate) *YouthCentreService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &YouthCentreService{centres: centres, admins: admins, scopes: scopes, validate: v, log: logger.Named("youth-centres")}
}

// List: super-admins see every centre, a regular admin only the one they are bound to.
func (s *YouthCentreService) List(ctx context.Context, actor helperAuth.Actor, q dto.ListYouthCentresQuery, p helper.Paging) ([]model.YouthCentreModel, int64, error) {
	var only *uuid.UUID
	if !actor.IsSuperAdmin {
		if actor.YouthCentreID == nil {
			return []model.YouthCentreModel{}, 0, nil
		}
		only = actor.YouthCentreID
	}
	return s.centres.List(ctx, only, q, p)
}

func (s *YouthCentreService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*model.YouthCentreModel, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin && !actor.BoundTo(id) {
		return nil, helper.Forbidden("You may only view your own youth centre")
	}
	return m, nil
}

func (s *YouthCentreService) Create(ctx context.Context, actor helperAuth.Actor, req dto.CreateYouthCentreRequest) (*model.YouthCentreModel, error) {
	if err := helperAuth.EnsureCanCreateCentre(actor); err != nil {
		return nil, err
	}
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}

	m := req.ToModel()
	var bind *uuid.UUID
	if !actor.IsSuperAdmin {
		id := actor.ID
		bind = &id
	}
	if err := s.withFreshSlug(ctx, &m, nil, func() error {
		return s.centres.CreateAndBind(ctx, &m, bind)
	}); err != nil {
		return nil, err
	}
	if bind != nil {
		s.scopes.Invalidate(ctx, *bind)
		s.log.Infow("admin auto-bound to new centre", "admin_id", *bind, "centre_id", m.ID)
	}
	return &m, nil
}

func (s *YouthCentreService) Update(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateYouthCentreRequest) (*model.YouthCentreModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCentreManager(actor, id); err != nil {
		return nil, err
	}

	write := func() error { return s.centres.Update(ctx, m) }
	if req.Apply(m) {
		err = s.withFreshSlug(ctx, m, &m.ID, write)
	} else {
		err = write()
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

const slugAttempts = 2

// withFreshSlug assigns a free slug and runs write, picking a new slug once
// more if a concurrent writer claimed it first.
func (s *YouthCentreService) withFreshSlug(ctx context.Context, m *model.YouthCentreModel, except *uuid.UUID, write func() error) error {
	for attempt := 1; ; attempt++ {
		slug, err := s.centres.UniqueSlug(ctx, m.Name, except)
		if err != nil {
			return err
		}
		m.Slug = slug
		err = write()
		if err == nil || !helper.IsUniqueViolation(err) || attempt == slugAttempts {
			return err
		}
		s.log.Warnw("slug claimed concurrently, retrying", "slug", slug)
	}
}

func (s *YouthCentreService) Delete(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) error {
	if err := helperAuth.EnsureSuperAdmin(actor, "delete youth centres"); err != nil {
		return err
	}
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	released, err := s.centres.DeleteAndUnbind(ctx, id)
	if err != nil {
		return err
	}
	s.scopes.Invalidate(ctx, released...)
	return nil
}

/* =========================================================
   Admin binding
========================================================= */

func (s *YouthCentreService) Admins(ctx context.Context, actor helperAuth.Actor, centreID uuid.UUID) ([]adminModel.AdminModel, error) {
	if _, err := s.find(ctx, centreID); err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCentreManager(actor, centreID); err != nil {
		return nil, err
	}
	return s.admins.ListByCentre(ctx, centreID)
}

// Unassigned lists admins that could be bound; only for callers who can bind.
func (s *YouthCentreService) Unassigned(ctx context.Context, actor helperAuth.Actor) ([]adminModel.AdminModel, error) {
	if !actor.IsSuperAdmin && actor.YouthCentreID == nil {
		return nil, helper.Forbidden("You are not assigned to a youth centre")
	}
	return s.admins.ListUnassigned(ctx)
}

func (s *YouthCentreService) AssignAdmin(ctx context.Context, actor helperAuth.Actor, centreID uuid.UUID, req dto.AdminAssignmentRequest) (*adminModel.AdminModel, error) {
	if err := s.validateAssignment(req); err != nil {
		return nil, err
	}
	if _, err := s.find(ctx, centreID); err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCentreManager(actor, centreID); err != nil {
		return nil, err
	}

	target, err := s.findAdmin(ctx, req.AdminID)
	if err != nil {
		return nil, err
	}
	if target.IsSuperAdmin {
		return nil, helper.Unprocessable("Super admins cannot be assigned to a youth centre")
	}
	if target.YouthCentreID != nil {
		if *target.YouthCentreID == centreID {
			return target, nil
		}
		return nil, helper.Unprocessable("This admin is already assigned to another youth centre")
	}

	ok, err := s.admins.BindCentre(ctx, target.ID, centreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.Unprocessable("This admin is already assigned to another youth centre")
	}
	s.scopes.Invalidate(ctx, target.ID)
	target.YouthCentreID = &centreID
	return target, nil
}

func (s *YouthCentreService) RemoveAdmin(ctx context.Context, actor helperAuth.Actor, centreID uuid.UUID, req dto.AdminAssignmentRequest) (*adminModel.AdminModel, error) {
	if err := s.validateAssignment(req); err != nil {
		return nil, err
	}
	if _, err := s.find(ctx, centreID); err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCentreManager(actor, centreID); err != nil {
		return nil, err
	}
	if req.AdminID == actor.ID {
		return nil, helper.Unprocessable("You cannot remove yourself from the youth centre")
	}

	target, err := s.findAdmin(ctx, req.AdminID)
	if err != nil {
		return nil, err
	}
	if target.YouthCentreID == nil || *target.YouthCentreID != centreID {
		return nil, helper.Unprocessable("This admin is not assigned to this youth centre")
	}

	ok, err := s.admins.UnbindCentre(ctx, target.ID, centreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.Unprocessable("This admin is not assigned to this youth centre")
	}
	s.scopes.Invalidate(ctx, target.ID)
	target.YouthCentreID = nil
	return target, nil
}

func (s *YouthCentreService) validateAssignment(req dto.AdminAssignmentRequest) error {
	if req.AdminID == uuid.Nil {
		fe := helper.FieldErrors{}
		fe.Add("admin_id", "The admin_id field is required.")
		return fe
	}
	return helper.ValidateStruct(s.validate, &req)
}

func (s *YouthCentreService) find(ctx context.Context, id uuid.UUID) (*model.YouthCentreModel, error) {
	m, err := s.centres.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("youth centre not found")
		}
		return nil, err
	}
	return m, nil
}

func (s *YouthCentreService) findAdmin(ctx context.Context, id uuid.UUID) (*adminModel.AdminModel, error) {
	m, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("admin not found")
		}
		return nil, err
	}
	return m, nil
}
