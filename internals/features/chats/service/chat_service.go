package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/chats/dto"
	"youthcentre_backend/internals/features/chats/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type Store interface {
	List(ctx context.Context, actor helperAuth.Actor, q dto.ListChatsQuery, p helper.Paging) ([]model.ChatModel, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ChatModel, error)
	// EventOwner returns admin_id of the event, ErrRecordNotFound when id is
	// not an event.
	EventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error)
	Create(ctx context.Context, m *model.ChatModel) error
	Update(ctx context.Context, m *model.ChatModel) error
	Delete(ctx context.Context, m *model.ChatModel) error
}

type ChatService struct {
	store    Store
	validate *validator.Validate
}

func NewChatService(store Store, v *validator.Validate) *ChatService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ChatService{store: store, validate: v}
}

func (s *ChatService) List(ctx context.Context, actor helperAuth.Actor, q dto.ListChatsQuery, p helper.Paging) ([]model.ChatModel, int64, error) {
	return s.store.List(ctx, actor, q, p)
}

func (s *ChatService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*model.ChatModel, error) {
	m, owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin && m.AdminID != actor.ID && owner != actor.ID {
		return nil, helper.Forbidden("You may only view your own chats")
	}
	return m, nil
}

func (s *ChatService) Create(ctx context.Context, actor helperAuth.Actor, req dto.CreateChatRequest) (*model.ChatModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}
	owner, err := s.eventOwner(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCanModify(actor, owner, "events"); err != nil {
		return nil, err
	}

	m := req.ToModel(actor.ID)
	if err := s.store.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ChatService) Update(ctx context.Context, actor helperAuth.Actor, id uuid.UUID, req dto.UpdateChatRequest) (*model.ChatModel, error) {
	req.Normalize()
	if err := helper.ValidateStruct(s.validate, &req); err != nil {
		return nil, err
	}
	m, owner, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := helperAuth.EnsureCanModifyAttached(actor, m.AdminID, owner, "chats"); err != nil {
		return nil, err
	}
	req.Apply(m)
	if err := s.store.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChatService) Delete(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) error {
	m, owner, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCanModifyAttached(actor, m.AdminID, owner, "chats"); err != nil {
		return err
	}
	return s.store.Delete(ctx, m)
}

func (s *ChatService) load(ctx context.Context, id uuid.UUID) (*model.ChatModel, uuid.UUID, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, helper.NotFound("chat not found")
		}
		return nil, uuid.Nil, err
	}
	owner, err := s.store.EventOwner(ctx, m.EventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, uuid.Nil, err
	}
	return m, owner, nil
}

func (s *ChatService) eventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error) {
	fe := helper.FieldErrors{}
	if eventID == uuid.Nil {
		fe.Add("event_id", "The event_id field is required.")
		return uuid.Nil, fe
	}
	owner, err := s.store.EventOwner(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fe.Add("event_id", "The selected event_id is invalid.")
			return uuid.Nil, fe
		}
		return uuid.Nil, err
	}
	return owner, nil
}
