package service

import (
	"time"

	"youthcentre_backend/internals/features/livestreams/model"
)

// ApplyStatus moves l to target. Going live stamps started_at once, ending
// stamps ended_at once, and going back to scheduled clears both.
func ApplyStatus(l *model.LivestreamModel, target string, now time.Time) {
	switch target {
	case model.StatusScheduled:
		l.StartedAt, l.EndedAt = nil, nil
	case model.StatusLive:
		if l.StartedAt == nil {
			t := now
			l.StartedAt = &t
		}
		l.EndedAt = nil
	case model.StatusEnded:
		if l.StartedAt == nil {
			t := now
			l.StartedAt = &t
		}
		if l.EndedAt == nil {
			t := now
			l.EndedAt = &t
		}
	}
	l.Status = target
}
