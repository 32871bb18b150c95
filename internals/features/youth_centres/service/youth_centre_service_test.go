package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	adminModel "youthcentre_backend/internals/features/admins/model"
	"youthcentre_backend/internals/features/youth_centres/dto"
	"youthcentre_backend/internals/features/youth_centres/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type fixture struct {
	db    *memDB
	inv   *recordingInvalidator
	svc   *YouthCentreService
	super helperAuth.Actor
}

func newFixture() *fixture {
	db := newMemDB()
	inv := &recordingInvalidator{}
	f := &fixture{
		db:    db,
		inv:   inv,
		svc:   NewYouthCentreService(centreStore{db}, adminStore{db}, inv, nil),
		super: helperAuth.Actor{ID: uuid.New(), IsSuperAdmin: true},
	}
	db.admins[f.super.ID] = adminModel.AdminModel{ID: f.super.ID, IsSuperAdmin: true, IsActive: true}
	return f
}

func (f *fixture) addCentre(name string) uuid.UUID {
	id := uuid.New()
	f.db.centres[id] = model.YouthCentreModel{ID: id, Name: name, Slug: helper.Slugify(name, 120), IsActive: true}
	return id
}

func (f *fixture) addAdmin(centre *uuid.UUID) helperAuth.Actor {
	id := uuid.New()
	f.db.admins[id] = adminModel.AdminModel{ID: id, Name: "admin " + id.String()[:4], IsActive: true, YouthCentreID: centre}
	return helperAuth.Actor{ID: id, YouthCentreID: centre}
}

func statusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	var ve helper.FieldErrors
	if errors.As(err, &ve) {
		return fiber.StatusUnprocessableEntity
	}
	return 0
}

func TestCreate_RegularAdminIsAutoBound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	actor := f.addAdmin(nil)

	m, err := f.svc.Create(ctx, actor, dto.CreateYouthCentreRequest{Name: "Maison de Jeunes Béjaïa"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if m.Slug != "maison-de-jeunes-bejaia" {
		t.Errorf("slug = %q", m.Slug)
	}
	bound := f.db.admins[actor.ID].YouthCentreID
	if bound == nil || *bound != m.ID {
		t.Fatalf("creator not bound to new centre: %v", bound)
	}
	if len(f.inv.ids) != 1 || f.inv.ids[0] != actor.ID {
		t.Errorf("invalidated = %v", f.inv.ids)
	}

	// a bound admin cannot create a second centre
	actor.YouthCentreID = bound
	if _, err := f.svc.Create(ctx, actor, dto.CreateYouthCentreRequest{Name: "Other"}); statusOf(err) != fiber.StatusForbidden {
		t.Errorf("second Create() status = %d, want 403", statusOf(err))
	}
}

func TestCreate_SuperAdminNotBound(t *testing.T) {
	f := newFixture()
	m, err := f.svc.Create(context.Background(), f.super, dto.CreateYouthCentreRequest{Name: "Centre"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.db.admins[f.super.ID].YouthCentreID != nil {
		t.Error("super admin must stay unbound")
	}
	if !m.IsActive {
		t.Error("new centre should default to active")
	}
	if len(f.inv.ids) != 0 {
		t.Errorf("nothing to invalidate, got %v", f.inv.ids)
	}
}

func TestCreate_RetriesWhenSlugClaimedConcurrently(t *testing.T) {
	f := newFixture()
	f.db.claimSlugs = []string{"maison-des-jeunes"}

	m, err := f.svc.Create(context.Background(), f.super, dto.CreateYouthCentreRequest{Name: "Maison des Jeunes"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if m.Slug != "maison-des-jeunes-2" {
		t.Errorf("slug = %q, want the next free one", m.Slug)
	}
	if _, ok := f.db.centres[m.ID]; !ok {
		t.Error("centre not stored after retry")
	}
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), f.super, dto.CreateYouthCentreRequest{Name: "   "})
	var fe helper.FieldErrors
	if !errors.As(err, &fe) || len(fe["name"]) == 0 {
		t.Fatalf("want name field error, got %v", err)
	}
}

func TestListAndGet_Scoping(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addCentre("Alpha")
	b := f.addCentre("Beta")
	actor := f.addAdmin(&a)

	rows, total, err := f.svc.List(ctx, actor, dto.ListYouthCentresQuery{}, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	if err != nil || total != 1 || rows[0].ID != a {
		t.Fatalf("List() = %v, %d, %v", rows, total, err)
	}
	_, total, _ = f.svc.List(ctx, f.super, dto.ListYouthCentresQuery{}, helper.Paging{Page: 1, PerPage: 20, Limit: 20})
	if total != 2 {
		t.Errorf("super admin total = %d, want 2", total)
	}
	unbound := f.addAdmin(nil)
	if _, total, _ := f.svc.List(ctx, unbound, dto.ListYouthCentresQuery{}, helper.Paging{}); total != 0 {
		t.Errorf("unbound admin total = %d, want 0", total)
	}

	if _, err := f.svc.Get(ctx, actor, b); statusOf(err) != fiber.StatusForbidden {
		t.Errorf("Get(other) status = %d, want 403", statusOf(err))
	}
	if _, err := f.svc.Get(ctx, actor, uuid.New()); statusOf(err) != fiber.StatusNotFound {
		t.Errorf("Get(missing) status = %d, want 404", statusOf(err))
	}
}

func TestUpdate_RenameRefreshesSlug(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.addCentre("Alpha")
	actor := f.addAdmin(&id)

	name := "Alpha Nouveau"
	m, err := f.svc.Update(ctx, actor, id, dto.UpdateYouthCentreRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if m.Slug != "alpha-nouveau" {
		t.Errorf("slug = %q", m.Slug)
	}

	other := f.addAdmin(nil)
	if _, err := f.svc.Update(ctx, other, id, dto.UpdateYouthCentreRequest{Name: &name}); statusOf(err) != fiber.StatusForbidden {
		t.Errorf("foreign Update() status = %d, want 403", statusOf(err))
	}
}

func TestDelete_SuperAdminOnlyAndReleasesAdmins(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := f.addCentre("Alpha")
	a1 := f.addAdmin(&id)
	a2 := f.addAdmin(&id)

	if err := f.svc.Delete(ctx, a1, id); statusOf(err) != fiber.StatusForbidden {
		t.Fatalf("regular Delete() status = %d, want 403", statusOf(err))
	}
	if err := f.svc.Delete(ctx, f.super, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	for _, a := range []helperAuth.Actor{a1, a2} {
		if f.db.admins[a.ID].YouthCentreID != nil {
			t.Errorf("admin %s still bound", a.ID)
		}
	}
	if len(f.inv.ids) != 2 {
		t.Errorf("invalidated %d admins, want 2", len(f.inv.ids))
	}
	if err := f.svc.Delete(ctx, f.super, id); statusOf(err) != fiber.StatusNotFound {
		t.Errorf("repeat Delete() status = %d, want 404", statusOf(err))
	}
}

func TestAssignAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	home := f.addCentre("Home")
	away := f.addCentre("Away")
	manager := f.addAdmin(&home)
	free := f.addAdmin(nil)
	elsewhere := f.addAdmin(&away)

	a, err := f.svc.AssignAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: free.ID})
	if err != nil {
		t.Fatalf("AssignAdmin() error = %v", err)
	}
	if a.YouthCentreID == nil || *a.YouthCentreID != home {
		t.Errorf("returned admin not bound: %v", a.YouthCentreID)
	}

	// idempotent
	if _, err := f.svc.AssignAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: free.ID}); err != nil {
		t.Errorf("repeat AssignAdmin() error = %v", err)
	}

	cases := []struct {
		name  string
		actor helperAuth.Actor
		centr uuid.UUID
		admin uuid.UUID
		want  int
	}{
		{"bound elsewhere", manager, home, elsewhere.ID, fiber.StatusUnprocessableEntity},
		{"super admin target", f.super, home, f.super.ID, fiber.StatusUnprocessableEntity},
		{"unknown admin", manager, home, uuid.New(), fiber.StatusNotFound},
		{"missing admin id", manager, home, uuid.Nil, fiber.StatusUnprocessableEntity},
		{"foreign centre", manager, away, free.ID, fiber.StatusForbidden},
		{"unknown centre", f.super, uuid.New(), free.ID, fiber.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AssignAdmin(ctx, tc.actor, tc.centr, dto.AdminAssignmentRequest{AdminID: tc.admin})
			if got := statusOf(err); got != tc.want {
				t.Errorf("status = %d, want %d (err=%v)", got, tc.want, err)
			}
		})
	}
}

func TestRemoveAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	home := f.addCentre("Home")
	manager := f.addAdmin(&home)
	colleague := f.addAdmin(&home)
	stranger := f.addAdmin(nil)

	t.Run("self removal is refused", func(t *testing.T) {
		_, err := f.svc.RemoveAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: manager.ID})
		if statusOf(err) != fiber.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", statusOf(err))
		}
		if err.Error() != "You cannot remove yourself from the youth centre" {
			t.Errorf("message = %q", err.Error())
		}
		if b := f.db.admins[manager.ID].YouthCentreID; b == nil || *b != home {
			t.Error("binding must be unchanged")
		}
		if len(f.inv.ids) != 0 {
			t.Errorf("nothing should be invalidated, got %v", f.inv.ids)
		}
	})

	t.Run("not bound here", func(t *testing.T) {
		_, err := f.svc.RemoveAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: stranger.ID})
		if statusOf(err) != fiber.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", statusOf(err))
		}
	})

	t.Run("removes colleague", func(t *testing.T) {
		a, err := f.svc.RemoveAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: colleague.ID})
		if err != nil {
			t.Fatalf("RemoveAdmin() error = %v", err)
		}
		if a.YouthCentreID != nil || f.db.admins[colleague.ID].YouthCentreID != nil {
			t.Error("colleague should be unbound")
		}
		if len(f.inv.ids) != 1 || f.inv.ids[0] != colleague.ID {
			t.Errorf("invalidated = %v", f.inv.ids)
		}
	})
}

func TestUnassigned(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	home := f.addCentre("Home")
	manager := f.addAdmin(&home)
	free := f.addAdmin(nil)

	rows, err := f.svc.Unassigned(ctx, manager)
	if err != nil {
		t.Fatalf("Unassigned() error = %v", err)
	}
	if len(rows) != 1 || rows[0].ID != free.ID {
		t.Errorf("Unassigned() = %v", rows)
	}
	if _, err := f.svc.Unassigned(ctx, free); statusOf(err) != fiber.StatusForbidden {
		t.Errorf("unbound caller status = %d, want 403", statusOf(err))
	}
}

func TestAssignAdmin_LosesConcurrentBind(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	home := f.addCentre("Home")
	away := f.addCentre("Away")
	manager := f.addAdmin(&home)
	free := f.addAdmin(nil)

	// another request binds the admin to Away after our read
	f.db.interleave = func() {
		a := f.db.admins[free.ID]
		a.YouthCentreID = &away
		f.db.admins[free.ID] = a
	}

	_, err := f.svc.AssignAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: free.ID})
	if statusOf(err) != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (err=%v)", statusOf(err), err)
	}
	if b := f.db.admins[free.ID].YouthCentreID; b == nil || *b != away {
		t.Errorf("binding = %v, want the concurrent one kept", b)
	}
	if len(f.inv.ids) != 0 {
		t.Errorf("nothing should be invalidated, got %v", f.inv.ids)
	}
}

func TestRemoveAdmin_LosesConcurrentRebind(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	home := f.addCentre("Home")
	away := f.addCentre("Away")
	manager := f.addAdmin(&home)
	colleague := f.addAdmin(&home)

	// the colleague is moved to Away between our read and our write
	f.db.interleave = func() {
		a := f.db.admins[colleague.ID]
		a.YouthCentreID = &away
		f.db.admins[colleague.ID] = a
	}

	_, err := f.svc.RemoveAdmin(ctx, manager, home, dto.AdminAssignmentRequest{AdminID: colleague.ID})
	if statusOf(err) != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (err=%v)", statusOf(err), err)
	}
	if b := f.db.admins[colleague.ID].YouthCentreID; b == nil || *b != away {
		t.Errorf("binding = %v, the Away binding must survive", b)
	}
}
