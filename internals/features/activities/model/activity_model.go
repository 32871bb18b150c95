// file: internals/features/activities/model/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUpcoming = "upcoming"
)

// ActivityModel backs events, educations, clubs and direct-activities,
// told apart by Kind. Participants mirrors the approved inscription count
// and is only written by the inscription workflow and the reconcile job.
type ActivityModel struct {
	ID   uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind ActivityKind `json:"kind" gorm:"type:varchar(30);not null;index:idx_activities_kind_admin,priority:1"`

	Title       string     `json:"title" gorm:"type:varchar(200);not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	Category    *string    `json:"category,omitempty" gorm:"type:varchar(80);index"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Location    *string    `json:"location,omitempty" gorm:"type:text"`

	Capacity     *int `json:"capacity,omitempty" gorm:"check:capacity IS NULL OR capacity >= 0"`
	Participants int  `json:"participants" gorm:"not null;default:0"`

	HasPrice bool     `json:"has_price" gorm:"not null;default:false"`
	Price    *float64 `json:"price" gorm:"type:numeric(12,2);check:price IS NULL OR price >= 0"`

	AdminID  uuid.UUID  `json:"admin_id" gorm:"type:uuid;not null;index:idx_activities_kind_admin,priority:2"`
	CenterID *uuid.UUID `json:"center_id,omitempty" gorm:"type:uuid;index"`

	Status   string `json:"status" gorm:"type:varchar(30);not null;default:'upcoming'"`
	IsActive bool   `json:"is_active" gorm:"not null"`

	// event only
	EventType      *string `json:"event_type,omitempty" gorm:"type:varchar(30)"`
	AttendanceType *string `json:"attendance_type,omitempty" gorm:"type:varchar(30)"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (ActivityModel) TableName() string { return "activities" }

// WritableColumns are updated by admin edits; participants is excluded.
var WritableColumns = []string{
	"title", "description", "category", "starts_at", "ends_at", "location",
	"capacity", "has_price", "price", "center_id", "status", "is_active",
	"event_type", "attendance_type", "updated_at",
}
