package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"youthcentre_backend/internals/logger"
)

type ReconcileStore interface {
	DriftedActivities(ctx context.Context) ([]uuid.UUID, error)
	InTx(ctx context.Context, fn func(tx TxStore) error) error
}

// ParticipantsReconciler repairs activities.participants one activity at a
// time, holding the same row lock as UpdateStatus so a recount committed by
// the workflow is never overwritten with an older count.
type ParticipantsReconciler struct {
	store ReconcileStore
	log   *zap.SugaredLogger
}

func NewParticipantsReconciler(store ReconcileStore) *ParticipantsReconciler {
	return &ParticipantsReconciler{store: store, log: logger.Named("reconcile")}
}

// ReconcileParticipants returns how many counters it rewrote.
func (r *ParticipantsReconciler) ReconcileParticipants(ctx context.Context) (int64, error) {
	ids, err := r.store.DriftedActivities(ctx)
	if err != nil {
		return 0, err
	}

	var fixed int64
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return fixed, err
		}
		changed, err := r.reconcileOne(ctx, id)
		if err != nil {
			return fixed, err
		}
		if changed {
			fixed++
		}
	}
	return fixed, nil
}

func (r *ParticipantsReconciler) reconcileOne(ctx context.Context, id uuid.UUID) (bool, error) {
	changed := false
	err := r.store.InTx(ctx, func(tx TxStore) error {
		act, err := tx.LockActivity(ctx, id)
		if err != nil {
			return err
		}
		n, err := tx.CountApproved(ctx, id)
		if err != nil {
			return err
		}
		if int64(act.Participants) == n {
			return nil
		}
		r.log.Infow("participants drift", "activity_id", id, "stored", act.Participants, "approved", n)
		changed = true
		return tx.SetParticipants(ctx, id, int(n))
	})
	// deleted since the candidate scan
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return changed, err
}
