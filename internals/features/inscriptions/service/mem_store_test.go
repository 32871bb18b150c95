package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/inscriptions/dto"
	"youthcentre_backend/internals/features/inscriptions/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

// memStore keeps activities and inscriptions in maps. InTx works on a copy
// and commits only when fn succeeds, like a database transaction.
type memStore struct {
	mu           sync.Mutex
	activities   map[uuid.UUID]activityModel.ActivityModel
	inscriptions map[uuid.UUID]model.InscriptionModel
	failCount    bool

	// beforeTx runs once inside the next InTx, before its snapshot is taken,
	// like a concurrent transaction that committed first.
	beforeTx func()
}

func (s *memStore) DriftedActivities(context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uuid.UUID
	for id, a := range s.activities {
		if a.Participants != s.approvedCount(id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func newMemStore() *memStore {
	return &memStore{
		activities:   map[uuid.UUID]activityModel.ActivityModel{},
		inscriptions: map[uuid.UUID]model.InscriptionModel{},
	}
}

func (s *memStore) addActivity(a activityModel.ActivityModel) activityModel.ActivityModel {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.activities[a.ID] = a
	return a
}

func (s *memStore) addInscription(kind activityModel.ActivityKind, activityID, userID uuid.UUID, status string) model.InscriptionModel {
	ins := model.InscriptionModel{ID: uuid.New(), Kind: kind, ActivityID: activityID, UserID: userID, Status: status}
	s.inscriptions[ins.ID] = ins
	return ins
}

func (s *memStore) approvedCount(activityID uuid.UUID) int {
	n := 0
	for _, i := range s.inscriptions {
		if i.ActivityID == activityID && i.Status == model.StatusApproved {
			n++
		}
	}
	return n
}

func (s *memStore) List(_ context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery, _ helper.Paging) ([]dto.InscriptionRow, int64, error) {
	rows, err := s.ListAll(context.Background(), kind, actor, q, 0)
	return rows, int64(len(rows)), err
}

func (s *memStore) ListAll(_ context.Context, kind activityModel.ActivityKind, actor helperAuth.Actor, q dto.ListInscriptionsQuery, limit int) ([]dto.InscriptionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := actor.OwnerFilter()
	out := []dto.InscriptionRow{}
	for _, i := range s.inscriptions {
		act, ok := s.activities[i.ActivityID]
		if !ok || i.Kind != kind {
			continue
		}
		if owner != nil && act.AdminID != *owner {
			continue
		}
		if q.ActivityID != nil && i.ActivityID != *q.ActivityID {
			continue
		}
		if q.Status != "" && i.Status != q.Status {
			continue
		}
		out = append(out, dto.InscriptionRow{
			ID: i.ID, Kind: string(i.Kind), ActivityID: i.ActivityID, ActivityTitle: act.Title,
			UserID: i.UserID, UserFirstName: "Amine", UserLastName: "Benali", Status: i.Status,
		})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) Participants(ctx context.Context, activityID uuid.UUID) ([]dto.InscriptionRow, error) {
	all, _ := s.ListAll(ctx, s.activities[activityID].Kind, helperAuth.Actor{ID: uuid.New(), IsSuperAdmin: true},
		dto.ListInscriptionsQuery{ActivityID: &activityID, Status: model.StatusApproved}, 0)
	return all, nil
}

func (s *memStore) FindActivity(_ context.Context, kind activityModel.ActivityKind, id uuid.UUID) (*activityModel.ActivityModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[id]
	if !ok || a.Kind != kind {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (s *memStore) InTx(_ context.Context, fn func(tx TxStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn := s.beforeTx; fn != nil {
		s.beforeTx = nil
		fn()
	}

	tx := &memTx{
		parent:       s,
		activities:   make(map[uuid.UUID]activityModel.ActivityModel, len(s.activities)),
		inscriptions: make(map[uuid.UUID]model.InscriptionModel, len(s.inscriptions)),
	}
	for k, v := range s.activities {
		tx.activities[k] = v
	}
	for k, v := range s.inscriptions {
		tx.inscriptions[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.activities = tx.activities
	s.inscriptions = tx.inscriptions
	return nil
}

type memTx struct {
	parent       *memStore
	activities   map[uuid.UUID]activityModel.ActivityModel
	inscriptions map[uuid.UUID]model.InscriptionModel
}

func (t *memTx) LockForTransition(_ context.Context, kind activityModel.ActivityKind, id uuid.UUID) (*model.InscriptionModel, *activityModel.ActivityModel, error) {
	ins, ok := t.inscriptions[id]
	if !ok || ins.Kind != kind {
		return nil, nil, gorm.ErrRecordNotFound
	}
	act, ok := t.activities[ins.ActivityID]
	if !ok {
		return nil, nil, gorm.ErrRecordNotFound
	}
	return &ins, &act, nil
}

func (t *memTx) LockActivity(_ context.Context, id uuid.UUID) (*activityModel.ActivityModel, error) {
	act, ok := t.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &act, nil
}

func (t *memTx) SetStatus(_ context.Context, id uuid.UUID, status string, at time.Time) error {
	ins := t.inscriptions[id]
	ins.Status = status
	ins.UpdatedAt = at
	t.inscriptions[id] = ins
	return nil
}

func (t *memTx) CountApproved(_ context.Context, activityID uuid.UUID) (int64, error) {
	if t.parent.failCount {
		return 0, errCountFailed
	}
	var n int64
	for _, i := range t.inscriptions {
		if i.ActivityID == activityID && i.Status == model.StatusApproved {
			n++
		}
	}
	return n, nil
}

func (t *memTx) SetParticipants(_ context.Context, activityID uuid.UUID, n int) error {
	a := t.activities[activityID]
	a.Participants = n
	t.activities[activityID] = a
	return nil
}
