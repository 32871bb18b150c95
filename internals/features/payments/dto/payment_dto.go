package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"youthcentre_backend/internals/features/payments/model"
)

type UpdatePaymentStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=completed failed refunded"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *UpdatePaymentStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type ListPaymentsQuery struct {
	EventID *uuid.UUID
	UserID  *uuid.UUID
	Status  string
	From    *time.Time
	To      *time.Time
}

// PaymentRow is a payment joined with its event and user.
type PaymentRow struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	UserFirstName string     `json:"user_first_name"`
	UserLastName  string     `json:"user_last_name"`
	EventID       uuid.UUID  `json:"event_id"`
	EventTitle    string     `json:"event_title"`
	Amount        float64    `json:"amount"`
	Method        *string    `json:"method,omitempty"`
	Reference     *string    `json:"reference,omitempty"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type StatusTotal struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type PaymentSummary struct {
	ByStatus        []StatusTotal `json:"by_status"`
	TotalCount      int64         `json:"total_count"`
	CompletedAmount float64       `json:"completed_amount"`
	RefundedAmount  float64       `json:"refunded_amount"`
}

func BuildSummary(totals []StatusTotal) PaymentSummary {
	out := PaymentSummary{ByStatus: make([]StatusTotal, 0, 4)}
	seen := map[string]StatusTotal{}
	for _, t := range totals {
		seen[t.Status] = t
	}
	for _, st := range []string{model.StatusPending, model.StatusCompleted, model.StatusFailed, model.StatusRefunded} {
		t := seen[st]
		t.Status = st
		out.ByStatus = append(out.ByStatus, t)
		out.TotalCount += t.Count
	}
	out.CompletedAmount = seen[model.StatusCompleted].Amount
	out.RefundedAmount = seen[model.StatusRefunded].Amount
	return out
}
