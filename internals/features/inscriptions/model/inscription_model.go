// file: internals/features/inscriptions/model/inscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	activityModel "youthcentre_backend/internals/features/activities/model"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusAttended = "attended"
)

// InscriptionModel: one user's registration on one activity.
type InscriptionModel struct {
	ID         uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind       activityModel.ActivityKind `json:"kind" gorm:"type:varchar(30);not null;index"`
	ActivityID uuid.UUID                  `json:"activity_id" gorm:"type:uuid;not null;uniqueIndex:uq_inscriptions_activity_user,priority:1;index:idx_inscriptions_activity_status,priority:1"`
	UserID     uuid.UUID                  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:uq_inscriptions_activity_user,priority:2"`
	Status     string                     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index:idx_inscriptions_activity_status,priority:2;check:status IN ('pending','approved','rejected','attended')"`
	Notes      *string                    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (InscriptionModel) TableName() string { return "inscriptions" }

// AffectsParticipants reports whether moving from → to changes the
// approved count of the parent activity.
func AffectsParticipants(from, to string) bool {
	return (from == StatusApproved) != (to == StatusApproved)
}
