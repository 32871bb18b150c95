// file: internals/features/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// PaymentModel: flat record of a user paying for an event.
// PaidAt is set exactly while the status is completed.
type PaymentModel struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	EventID   uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	Amount    float64    `json:"amount" gorm:"type:numeric(12,2);not null;check:amount >= 0"`
	Method    *string    `json:"method,omitempty" gorm:"type:varchar(30)"`
	Reference *string    `json:"reference,omitempty" gorm:"type:varchar(100)"`
	Status    string     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index;check:status IN ('pending','completed','failed','refunded')"`
	PaidAt    *time.Time `json:"paid_at"`
	Notes     *string    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PaymentModel) TableName() string { return "payments" }
