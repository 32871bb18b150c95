package dto

import (
	"strings"

	"github.com/google/uuid"

	adminModel "youthcentre_backend/internals/features/admins/model"
	"youthcentre_backend/internals/features/youth_centres/model"
)

type CreateYouthCentreRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Wilaya      *string `json:"wilaya" validate:"omitempty,max=80"`
	Commune     *string `json:"commune" validate:"omitempty,max=80"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Description *string `json:"description" validate:"omitempty"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

func (r *CreateYouthCentreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = trimPtr(r.Email)
	r.Wilaya = trimPtr(r.Wilaya)
	r.Commune = trimPtr(r.Commune)
}

func (r CreateYouthCentreRequest) ToModel() model.YouthCentreModel {
	m := model.YouthCentreModel{
		ID:          uuid.New(),
		Name:        r.Name,
		Wilaya:      r.Wilaya,
		Commune:     r.Commune,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Description: r.Description,
		Capacity:    r.Capacity,
		IsActive:    true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateYouthCentreRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Wilaya      *string `json:"wilaya" validate:"omitempty,max=80"`
	Commune     *string `json:"commune" validate:"omitempty,max=80"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Description *string `json:"description" validate:"omitempty"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateYouthCentreRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Email = trimPtr(r.Email)
	r.Wilaya = trimPtr(r.Wilaya)
	r.Commune = trimPtr(r.Commune)
}

// Apply merges the patch; reports whether the name changed (slug refresh).
func (r UpdateYouthCentreRequest) Apply(m *model.YouthCentreModel) (renamed bool) {
	if r.Name != nil && *r.Name != m.Name {
		m.Name = *r.Name
		renamed = true
	}
	if r.Wilaya != nil {
		m.Wilaya = r.Wilaya
	}
	if r.Commune != nil {
		m.Commune = r.Commune
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.Capacity != nil {
		m.Capacity = r.Capacity
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return renamed
}

type AdminAssignmentRequest struct {
	AdminID uuid.UUID `json:"admin_id" validate:"required"`
}

type ListYouthCentresQuery struct {
	Wilaya   string
	IsActive *bool
	Q        string
}

type AdminBrief struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	IsActive      bool       `json:"is_active"`
	YouthCentreID *uuid.UUID `json:"youth_centre_id"`
}

func ToAdminBrief(a adminModel.AdminModel) AdminBrief {
	return AdminBrief{ID: a.ID, Name: a.Name, Email: a.Email, IsActive: a.IsActive, YouthCentreID: a.YouthCentreID}
}

func ToAdminBriefs(rows []adminModel.AdminModel) []AdminBrief {
	out := make([]AdminBrief, 0, len(rows))
	for _, a := range rows {
		out = append(out, ToAdminBrief(a))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
