// file: internals/scheduler/participants_reconciler.go
package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"youthcentre_backend/internals/logger"
)

// Reconciler rewrites drifted participant counters and reports how many
// activities it touched.
type Reconciler interface {
	ReconcileParticipants(ctx context.Context) (int64, error)
}

// ParticipantsJob is the cron.Job recomputing activities.participants.
type ParticipantsJob struct {
	reconciler Reconciler
	timeout    time.Duration
	log        *zap.SugaredLogger
	runs       atomic.Int64
}

func NewParticipantsJob(r Reconciler, timeout time.Duration) *ParticipantsJob {
	if timeout <= 0 {
		timeout = 4 * time.Minute
	}
	return &ParticipantsJob{reconciler: r, timeout: timeout, log: logger.Named("reconcile")}
}

func (j *ParticipantsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	fixed, err := j.reconciler.ReconcileParticipants(ctx)
	j.runs.Add(1)
	if err != nil {
		j.log.Errorw("participants reconcile failed", "err", err)
		return
	}
	if fixed > 0 {
		j.log.Warnw("participants counters corrected", "activities", fixed, "took", time.Since(start))
		return
	}
	j.log.Debugw("participants counters consistent", "took", time.Since(start))
}

// Runs reports how many times the job has executed.
func (j *ParticipantsJob) Runs() int64 { return j.runs.Load() }

// StartParticipantsReconciler schedules the job; an overlapping tick is
// skipped while the previous run is still going.
func StartParticipantsReconciler(spec string, r Reconciler) (*cron.Cron, error) {
	cl := cronLogger{log: logger.Named("cron")}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(
		cron.Recover(cl),
		cron.SkipIfStillRunning(cl),
	))
	if _, err := c.AddJob(spec, NewParticipantsJob(r, 0)); err != nil {
		return nil, fmt.Errorf("schedule participants reconcile %q: %w", spec, err)
	}
	c.Start()
	logger.Log.Infof("participants reconcile scheduled (%s)", spec)
	return c, nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "err", err)...)
}
