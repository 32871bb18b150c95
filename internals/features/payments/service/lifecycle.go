package service

import (
	"time"

	"youthcentre_backend/internals/features/payments/model"
)

// ApplyStatus moves p to target. Entering completed stamps paid_at,
// leaving it clears paid_at, anything else keeps it.
func ApplyStatus(p *model.PaymentModel, target string, now time.Time) {
	wasCompleted := p.Status == model.StatusCompleted
	isCompleted := target == model.StatusCompleted

	switch {
	case isCompleted && !wasCompleted:
		t := now
		p.PaidAt = &t
	case wasCompleted && !isCompleted:
		p.PaidAt = nil
	}
	p.Status = target
}
