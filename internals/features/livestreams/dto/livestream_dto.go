package dto

import (
	"strings"

	"github.com/google/uuid"

	"youthcentre_backend/internals/features/livestreams/model"
)

type CreateLivestreamRequest struct {
	EventID   uuid.UUID `json:"event_id"`
	Title     string    `json:"title" validate:"required,max=200"`
	StreamURL *string   `json:"stream_url" validate:"omitempty,url"`
	Status    string    `json:"status" validate:"omitempty,oneof=scheduled live ended"`
}

func (r *CreateLivestreamRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type UpdateLivestreamRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=200"`
	StreamURL *string `json:"stream_url" validate:"omitempty,url"`
	Status    *string `json:"status" validate:"omitempty,oneof=scheduled live ended"`
}

func (r *UpdateLivestreamRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}
}

func (r UpdateLivestreamRequest) Apply(m *model.LivestreamModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.StreamURL != nil {
		m.StreamURL = r.StreamURL
	}
}

type ListLivestreamsQuery struct {
	EventID *uuid.UUID
	Status  string
}
