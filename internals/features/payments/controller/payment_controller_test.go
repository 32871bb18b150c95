package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/payments/dto"
	"youthcentre_backend/internals/features/payments/model"
	"youthcentre_backend/internals/features/payments/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
	"youthcentre_backend/internals/helpers/dbtime"
)

// queryRecorder keeps the last filters the handlers passed down.
type queryRecorder struct {
	last  *dto.ListPaymentsQuery
	calls int
}

func (r *queryRecorder) List(_ context.Context, _ helperAuth.Actor, q dto.ListPaymentsQuery, _ helper.Paging) ([]dto.PaymentRow, int64, error) {
	r.calls++
	r.last = &q
	return []dto.PaymentRow{}, 0, nil
}

func (r *queryRecorder) Find(context.Context, helperAuth.Actor, uuid.UUID) (*dto.PaymentRow, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *queryRecorder) Totals(_ context.Context, _ helperAuth.Actor, q dto.ListPaymentsQuery) ([]dto.StatusTotal, error) {
	r.calls++
	r.last = &q
	return nil, nil
}

func (r *queryRecorder) UpdateLocked(context.Context, uuid.UUID, func(*model.PaymentModel, uuid.UUID) error) (*model.PaymentModel, error) {
	return nil, gorm.ErrRecordNotFound
}

type envelope struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
}

func newTestApp(store service.Store) *fiber.App {
	ctl := NewPaymentController(service.NewPaymentService(store, nil))
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		helperAuth.SetActor(c, helperAuth.Actor{ID: uuid.New(), IsSuperAdmin: true})
		return c.Next()
	})
	app.Get("/admin/payments", ctl.List)
	app.Get("/admin/payments/summary", ctl.Summary)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return resp.StatusCode, env
}

func TestListDateFilters(t *testing.T) {
	t.Run("valid range is inclusive of to", func(t *testing.T) {
		store := &queryRecorder{}
		status, _ := get(t, newTestApp(store), "/admin/payments?from=2026-03-01&to=2026-03-31")
		if status != fiber.StatusOK || store.last == nil {
			t.Fatalf("status = %d, calls = %d", status, store.calls)
		}
		wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, dbtime.Location())
		wantTo := time.Date(2026, 4, 1, 0, 0, 0, 0, dbtime.Location())
		if store.last.From == nil || !store.last.From.Equal(wantFrom) {
			t.Errorf("from = %v, want %v", store.last.From, wantFrom)
		}
		if store.last.To == nil || !store.last.To.Equal(wantTo) {
			t.Errorf("to = %v, want %v", store.last.To, wantTo)
		}
	})

	cases := []struct {
		name  string
		query string
		field string
	}{
		{"impossible month", "from=2026-13-45", "from"},
		{"word instead of date", "to=yesterday", "to"},
		{"reversed bounds", "from=2026-03-10&to=2026-03-09", "to"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, path := range []string{"/admin/payments", "/admin/payments/summary"} {
				store := &queryRecorder{}
				status, env := get(t, newTestApp(store), path+"?"+tc.query)
				if status != fiber.StatusUnprocessableEntity || len(env.Errors[tc.field]) == 0 {
					t.Errorf("%s: status = %d, errors = %v", path, status, env.Errors)
				}
				if store.calls != 0 {
					t.Errorf("%s: rejected filter still reached the store", path)
				}
			}
		})
	}

	t.Run("same day range", func(t *testing.T) {
		store := &queryRecorder{}
		if status, _ := get(t, newTestApp(store), "/admin/payments/summary?from=2026-03-10&to=2026-03-10"); status != fiber.StatusOK {
			t.Errorf("status = %d, want 200", status)
		}
	})
}

func TestListRejectsBadIDs(t *testing.T) {
	store := &queryRecorder{}
	status, env := get(t, newTestApp(store), "/admin/payments?event_id=nope&status=completed")
	if status != fiber.StatusUnprocessableEntity || len(env.Errors["event_id"]) == 0 {
		t.Fatalf("status = %d, errors = %v", status, env.Errors)
	}
	if status, _ := get(t, newTestApp(store), "/admin/payments?status="+strings.ToUpper("completed")); status != fiber.StatusOK {
		t.Errorf("upper-case status filter = %d, want 200", status)
	}
}
