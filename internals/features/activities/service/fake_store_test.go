package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/activities/dto"
	"youthcentre_backend/internals/features/activities/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

// memStore mimics ActivityRepository in memory.
type memStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.ActivityModel
}

func newMemStore(rows ...model.ActivityModel) *memStore {
	s := &memStore{rows: map[uuid.UUID]model.ActivityModel{}}
	for _, r := range rows {
		s.rows[r.ID] = r
	}
	return s
}

func (s *memStore) List(_ context.Context, kind model.ActivityKind, actor helperAuth.Actor, q dto.ListActivitiesQuery, p helper.Paging) ([]model.ActivityModel, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := actor.OwnerFilter()
	var out []model.ActivityModel
	for _, r := range s.rows {
		if r.Kind != kind {
			continue
		}
		if owner != nil && r.AdminID != *owner {
			continue
		}
		if q.Status != "" && r.Status != q.Status {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (s *memStore) FindByID(_ context.Context, kind model.ActivityKind, id uuid.UUID) (*model.ActivityModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok || r.Kind != kind {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (s *memStore) Create(_ context.Context, m *model.ActivityModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[m.ID] = *m
	return nil
}

func (s *memStore) Update(_ context.Context, m *model.ActivityModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.rows[m.ID]
	participants := cur.Participants
	cur = *m
	cur.Participants = participants
	s.rows[m.ID] = cur
	return nil
}

func (s *memStore) Delete(_ context.Context, m *model.ActivityModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, m.ID)
	return nil
}

func (s *memStore) get(id uuid.UUID) (model.ActivityModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	return r, ok
}
