package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UpdateInscriptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected attended"`
}

func (r *UpdateInscriptionStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type ListInscriptionsQuery struct {
	ActivityID *uuid.UUID
	UserID     *uuid.UUID
	Status     string
	Q          string
}

func (q *ListInscriptionsQuery) Normalize() {
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	q.Q = strings.TrimSpace(q.Q)
}

// InscriptionRow is an inscription joined with its activity and user.
type InscriptionRow struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	UserID        uuid.UUID `json:"user_id"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	UserEmail     *string   `json:"user_email,omitempty"`
	UserPhone     *string   `json:"user_phone,omitempty"`
	UserWilaya    *string   `json:"user_wilaya,omitempty"`
	UserCommune   *string   `json:"user_commune,omitempty"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r InscriptionRow) FullName() string {
	return strings.TrimSpace(r.UserFirstName + " " + r.UserLastName)
}

// StatusChange is what a status update returns.
type StatusChange struct {
	InscriptionID  uuid.UUID `json:"id"`
	ActivityID     uuid.UUID `json:"activity_id"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	Participants   int       `json:"participants"`
	Recounted      bool      `json:"participants_recounted"`
	UpdatedAt      time.Time `json:"updated_at"`
}
