package dto

import (
	"strings"

	"github.com/google/uuid"

	"youthcentre_backend/internals/features/chats/model"
)

type CreateChatRequest struct {
	EventID  uuid.UUID `json:"event_id"`
	Title    string    `json:"title" validate:"required,max=200"`
	IsActive *bool     `json:"is_active"`
}

func (r *CreateChatRequest) Normalize() { r.Title = strings.TrimSpace(r.Title) }

func (r CreateChatRequest) ToModel(adminID uuid.UUID) model.ChatModel {
	m := model.ChatModel{ID: uuid.New(), EventID: r.EventID, AdminID: adminID, Title: r.Title, IsActive: true}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateChatRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateChatRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
}

func (r UpdateChatRequest) Apply(m *model.ChatModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type ListChatsQuery struct {
	EventID  *uuid.UUID
	IsActive *bool
	Q        string
}
