package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	adminModel "youthcentre_backend/internals/features/admins/model"
	"youthcentre_backend/internals/features/youth_centres/dto"
	"youthcentre_backend/internals/features/youth_centres/model"
	helper "youthcentre_backend/internals/helpers"
)

// memDB backs both CentreStore and AdminStore so binding changes are shared.
type memDB struct {
	centres map[uuid.UUID]model.YouthCentreModel
	admins  map[uuid.UUID]adminModel.AdminModel
	slugs   map[string]bool

	// interleave runs once just before the next binding write, standing in
	// for a concurrent request that commits between read and write.
	interleave func()

	// claimSlugs lists slugs another writer takes just before our next insert.
	claimSlugs []string
}

var errSlugTaken = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

func (m *memDB) beforeWrite() {
	if fn := m.interleave; fn != nil {
		m.interleave = nil
		fn()
	}
}

func newMemDB() *memDB {
	return &memDB{
		centres: map[uuid.UUID]model.YouthCentreModel{},
		admins:  map[uuid.UUID]adminModel.AdminModel{},
		slugs:   map[string]bool{},
	}
}

type centreStore struct{ db *memDB }
type adminStore struct{ db *memDB }

func (s centreStore) List(_ context.Context, only *uuid.UUID, _ dto.ListYouthCentresQuery, _ helper.Paging) ([]model.YouthCentreModel, int64, error) {
	var out []model.YouthCentreModel
	for id, c := range s.db.centres {
		if only != nil && *only != id {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (s centreStore) FindByID(_ context.Context, id uuid.UUID) (*model.YouthCentreModel, error) {
	c, ok := s.db.centres[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (s centreStore) UniqueSlug(_ context.Context, name string, _ *uuid.UUID) (string, error) {
	base := helper.Slugify(name, 120)
	slug := base
	for i := 2; s.db.slugs[slug]; i++ {
		slug = base + "-" + string(rune('0'+i))
	}
	return slug, nil
}

func (s centreStore) CreateAndBind(_ context.Context, m *model.YouthCentreModel, bind *uuid.UUID) error {
	for _, slug := range s.db.claimSlugs {
		s.db.slugs[slug] = true
	}
	s.db.claimSlugs = nil
	if s.db.slugs[m.Slug] {
		return errSlugTaken
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.db.centres[m.ID] = *m
	s.db.slugs[m.Slug] = true
	if bind != nil {
		a := s.db.admins[*bind]
		a.YouthCentreID = &m.ID
		s.db.admins[*bind] = a
	}
	return nil
}

func (s centreStore) Update(_ context.Context, m *model.YouthCentreModel) error {
	s.db.centres[m.ID] = *m
	s.db.slugs[m.Slug] = true
	return nil
}

func (s centreStore) DeleteAndUnbind(_ context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	var released []uuid.UUID
	for aid, a := range s.db.admins {
		if a.YouthCentreID != nil && *a.YouthCentreID == id {
			a.YouthCentreID = nil
			s.db.admins[aid] = a
			released = append(released, aid)
		}
	}
	delete(s.db.centres, id)
	return released, nil
}

func (s adminStore) FindByID(_ context.Context, id uuid.UUID) (*adminModel.AdminModel, error) {
	a, ok := s.db.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (s adminStore) ListByCentre(_ context.Context, centreID uuid.UUID) ([]adminModel.AdminModel, error) {
	var out []adminModel.AdminModel
	for _, a := range s.db.admins {
		if a.YouthCentreID != nil && *a.YouthCentreID == centreID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s adminStore) ListUnassigned(_ context.Context) ([]adminModel.AdminModel, error) {
	var out []adminModel.AdminModel
	for _, a := range s.db.admins {
		if a.YouthCentreID == nil && !a.IsSuperAdmin && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s adminStore) BindCentre(_ context.Context, adminID, centreID uuid.UUID) (bool, error) {
	s.db.beforeWrite()
	a, ok := s.db.admins[adminID]
	if !ok || a.YouthCentreID != nil {
		return false, nil
	}
	a.YouthCentreID = &centreID
	s.db.admins[adminID] = a
	return true, nil
}

func (s adminStore) UnbindCentre(_ context.Context, adminID, centreID uuid.UUID) (bool, error) {
	s.db.beforeWrite()
	a, ok := s.db.admins[adminID]
	if !ok || a.YouthCentreID == nil || *a.YouthCentreID != centreID {
		return false, nil
	}
	a.YouthCentreID = nil
	s.db.admins[adminID] = a
	return true, nil
}

type recordingInvalidator struct{ ids []uuid.UUID }

func (r *recordingInvalidator) Invalidate(_ context.Context, ids ...uuid.UUID) {
	r.ids = append(r.ids, ids...)
}
