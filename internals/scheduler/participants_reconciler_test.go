package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeReconciler struct {
	fixed int64
	err   error
	calls int
	ctxOK bool
}

func (f *fakeReconciler) ReconcileParticipants(ctx context.Context) (int64, error) {
	f.calls++
	_, f.ctxOK = ctx.Deadline()
	return f.fixed, f.err
}

func TestParticipantsJobRun(t *testing.T) {
	for _, tc := range []struct {
		name string
		r    *fakeReconciler
	}{
		{"consistent", &fakeReconciler{}},
		{"corrected", &fakeReconciler{fixed: 3}},
		{"failing", &fakeReconciler{err: errors.New("db down")}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			job := NewParticipantsJob(tc.r, time.Second)
			job.Run()
			if tc.r.calls != 1 || job.Runs() != 1 {
				t.Errorf("calls = %d, runs = %d", tc.r.calls, job.Runs())
			}
			if !tc.r.ctxOK {
				t.Error("reconcile should run with a deadline")
			}
		})
	}
}

func TestStartParticipantsReconciler(t *testing.T) {
	if _, err := StartParticipantsReconciler("every now and then", &fakeReconciler{}); err == nil {
		t.Fatal("invalid spec should fail")
	}
	c, err := StartParticipantsReconciler("@every 6h", &fakeReconciler{})
	if err != nil {
		t.Fatalf("StartParticipantsReconciler() error = %v", err)
	}
	defer c.Stop()
	if n := len(c.Entries()); n != 1 {
		t.Errorf("entries = %d, want 1", n)
	}
}
