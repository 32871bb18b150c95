// file: internals/features/activities/dto/activity_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"youthcentre_backend/internals/features/activities/model"
)

/* ========== CREATE ========== */

type CreateActivityRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description" validate:"omitempty"`
	Category    *string    `json:"category" validate:"omitempty,max=80"`
	StartsAt    *time.Time `json:"starts_at" validate:"omitempty"`
	EndsAt      *time.Time `json:"ends_at" validate:"omitempty"`
	Location    *string    `json:"location" validate:"omitempty,max=500"`
	Capacity    *int       `json:"capacity" validate:"omitempty,min=0"`
	HasPrice    bool       `json:"has_price"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	CenterID    *uuid.UUID `json:"center_id" validate:"omitempty"`
	Status      *string    `json:"status" validate:"omitempty,max=30"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`

	EventType      *string `json:"event_type" validate:"omitempty,oneof=local regional national international"`
	AttendanceType *string `json:"attendance_type" validate:"omitempty,oneof=in-person online hybrid"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = trimPtr(r.Category)
	r.Location = trimPtr(r.Location)
	r.Status = lowerPtr(r.Status)
	r.EventType = lowerPtr(r.EventType)
	r.AttendanceType = lowerPtr(r.AttendanceType)
}

// ToModel fills what the request carries; owner, centre and kind are set by the service.
func (r CreateActivityRequest) ToModel(kind model.ActivityKind) model.ActivityModel {
	m := model.ActivityModel{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Location:    r.Location,
		Capacity:    r.Capacity,
		HasPrice:    r.HasPrice,
		Price:       r.Price,
		Status:      model.StatusUpcoming,
		IsActive:    true,
	}
	if r.Status != nil && *r.Status != "" {
		m.Status = *r.Status
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if kind == model.KindEvent {
		m.EventType = r.EventType
		m.AttendanceType = r.AttendanceType
	}
	return m
}

/* ========== UPDATE (partial) ========== */

type UpdateActivityRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty"`
	Category    *string    `json:"category" validate:"omitempty,max=80"`
	StartsAt    *time.Time `json:"starts_at" validate:"omitempty"`
	EndsAt      *time.Time `json:"ends_at" validate:"omitempty"`
	Location    *string    `json:"location" validate:"omitempty,max=500"`
	Capacity    *int       `json:"capacity" validate:"omitempty,min=0"`
	HasPrice    *bool      `json:"has_price" validate:"omitempty"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	CenterID    *uuid.UUID `json:"center_id" validate:"omitempty"`
	Status      *string    `json:"status" validate:"omitempty,min=1,max=30"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`

	EventType      *string `json:"event_type" validate:"omitempty,oneof=local regional national international"`
	AttendanceType *string `json:"attendance_type" validate:"omitempty,oneof=in-person online hybrid"`
}

func (r *UpdateActivityRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	r.Category = trimPtr(r.Category)
	r.Location = trimPtr(r.Location)
	r.Status = lowerPtr(r.Status)
	r.EventType = lowerPtr(r.EventType)
	r.AttendanceType = lowerPtr(r.AttendanceType)
}

// Apply merges the patch into m. Pricing is normalized afterwards by the service.
func (r UpdateActivityRequest) Apply(m *model.ActivityModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Category != nil {
		m.Category = r.Category
	}
	if r.StartsAt != nil {
		m.StartsAt = r.StartsAt
	}
	if r.EndsAt != nil {
		m.EndsAt = r.EndsAt
	}
	if r.Location != nil {
		m.Location = r.Location
	}
	if r.Capacity != nil {
		m.Capacity = r.Capacity
	}
	if r.HasPrice != nil {
		m.HasPrice = *r.HasPrice
	}
	if r.Price != nil {
		m.Price = r.Price
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if m.Kind == model.KindEvent {
		if r.EventType != nil {
			m.EventType = r.EventType
		}
		if r.AttendanceType != nil {
			m.AttendanceType = r.AttendanceType
		}
	}
}

/* ========== LIST QUERY ========== */

type ListActivitiesQuery struct {
	Status   string     `query:"status"`
	Category string     `query:"category"`
	IsActive *bool      `query:"-"`
	CenterID *uuid.UUID `query:"-"`
	// role of the creator: super_admin | admin
	Role string `query:"role"`
	Q    string `query:"q"`
}

func (q *ListActivitiesQuery) Normalize() {
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	q.Category = strings.TrimSpace(q.Category)
	q.Role = strings.ToLower(strings.TrimSpace(q.Role))
	q.Q = strings.TrimSpace(q.Q)
}

/* ========== RESPONSE ========== */

type ActivityResponse struct {
	ID             uuid.UUID  `json:"id"`
	Kind           string     `json:"kind"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	Category       *string    `json:"category,omitempty"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Capacity       *int       `json:"capacity,omitempty"`
	Participants   int        `json:"participants"`
	AvailableSeats *int       `json:"available_seats,omitempty"`
	HasPrice       bool       `json:"has_price"`
	Price          *float64   `json:"price"`
	AdminID        uuid.UUID  `json:"admin_id"`
	CenterID       *uuid.UUID `json:"center_id,omitempty"`
	Status         string     `json:"status"`
	IsActive       bool       `json:"is_active"`

	EventType      *string `json:"event_type,omitempty"`
	AttendanceType *string `json:"attendance_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToActivityResponse(m model.ActivityModel) ActivityResponse {
	resp := ActivityResponse{
		ID:             m.ID,
		Kind:           string(m.Kind),
		Title:          m.Title,
		Description:    m.Description,
		Category:       m.Category,
		StartsAt:       m.StartsAt,
		EndsAt:         m.EndsAt,
		Location:       m.Location,
		Capacity:       m.Capacity,
		Participants:   m.Participants,
		HasPrice:       m.HasPrice,
		Price:          m.Price,
		AdminID:        m.AdminID,
		CenterID:       m.CenterID,
		Status:         m.Status,
		IsActive:       m.IsActive,
		EventType:      m.EventType,
		AttendanceType: m.AttendanceType,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Capacity != nil {
		left := *m.Capacity - m.Participants
		if left < 0 {
			left = 0
		}
		resp.AvailableSeats = &left
	}
	return resp
}

func ToActivityResponses(rows []model.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToActivityResponse(m))
	}
	return out
}

/* ========== small utils ========== */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.ToLower(strings.TrimSpace(*s))
	return &t
}
