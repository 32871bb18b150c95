package service

import (
	"testing"
	"time"

	"youthcentre_backend/internals/features/payments/model"
)

func TestApplyStatus(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	tests := []struct {
		name       string
		from       string
		paidAt     *time.Time
		to         string
		wantPaidAt *time.Time
	}{
		{"pending to completed stamps", model.StatusPending, nil, model.StatusCompleted, &t1},
		{"failed to completed stamps", model.StatusFailed, nil, model.StatusCompleted, &t1},
		{"completed to refunded clears", model.StatusCompleted, &t0, model.StatusRefunded, nil},
		{"completed to failed clears", model.StatusCompleted, &t0, model.StatusFailed, nil},
		{"completed to completed keeps", model.StatusCompleted, &t0, model.StatusCompleted, &t0},
		{"pending to failed keeps nil", model.StatusPending, nil, model.StatusFailed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.PaymentModel{Status: tt.from, PaidAt: tt.paidAt}
			ApplyStatus(&p, tt.to, t1)
			if p.Status != tt.to {
				t.Errorf("status = %s, want %s", p.Status, tt.to)
			}
			switch {
			case tt.wantPaidAt == nil && p.PaidAt != nil:
				t.Errorf("paid_at = %v, want nil", *p.PaidAt)
			case tt.wantPaidAt != nil && (p.PaidAt == nil || !p.PaidAt.Equal(*tt.wantPaidAt)):
				t.Errorf("paid_at = %v, want %v", p.PaidAt, *tt.wantPaidAt)
			}
		})
	}
}

// paid_at is non-nil exactly when the payment is completed, for any sequence.
func TestPaidAtInvariantOverSequence(t *testing.T) {
	p := model.PaymentModel{Status: model.StatusPending}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seq := []string{
		model.StatusCompleted, model.StatusRefunded, model.StatusCompleted, model.StatusCompleted,
		model.StatusFailed, model.StatusPending, model.StatusCompleted,
	}
	var lastCompletion time.Time
	for i, st := range seq {
		now = now.Add(time.Minute)
		prev := p.Status
		ApplyStatus(&p, st, now)
		if st == model.StatusCompleted && prev != model.StatusCompleted {
			lastCompletion = now
		}
		if (p.PaidAt != nil) != (p.Status == model.StatusCompleted) {
			t.Fatalf("step %d: status=%s paid_at=%v", i, p.Status, p.PaidAt)
		}
		if p.PaidAt != nil && !p.PaidAt.Equal(lastCompletion) {
			t.Fatalf("step %d: paid_at=%v, want %v", i, *p.PaidAt, lastCompletion)
		}
	}
}
