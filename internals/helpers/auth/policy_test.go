package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %T", err)
	}
	return fe.Code
}

func TestEnsureCanModify(t *testing.T) {
	owner := uuid.New()
	other := Actor{ID: uuid.New()}
	super := Actor{ID: uuid.New(), IsSuperAdmin: true}

	if err := EnsureCanModify(Actor{ID: owner}, owner, "events"); err != nil {
		t.Errorf("owner should modify: %v", err)
	}
	if err := EnsureCanModify(super, owner, "events"); err != nil {
		t.Errorf("super admin should modify: %v", err)
	}
	err := EnsureCanModify(other, owner, "events")
	if statusOf(t, err) != fiber.StatusForbidden {
		t.Fatalf("non-owner status = %d, want 403", statusOf(t, err))
	}
	if err.Error() != "You may only modify your own events" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestEnsureEventContent(t *testing.T) {
	regular := Actor{ID: uuid.New()}
	super := Actor{ID: uuid.New(), IsSuperAdmin: true}

	tests := []struct {
		name       string
		actor      Actor
		eventType  string
		attendance string
		want       int
	}{
		{"regular local in-person", regular, "local", "in-person", 0},
		{"regular national", regular, "national", "in-person", fiber.StatusForbidden},
		{"regular online", regular, "local", "online", fiber.StatusForbidden},
		{"regular empty type", regular, "", "in-person", fiber.StatusForbidden},
		{"super international online", super, "international", "online", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusOf(t, EnsureEventContent(tt.actor, tt.eventType, tt.attendance))
			if got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCentreRules(t *testing.T) {
	centre := uuid.New()
	bound := Actor{ID: uuid.New(), YouthCentreID: &centre}
	unbound := Actor{ID: uuid.New()}
	super := Actor{ID: uuid.New(), IsSuperAdmin: true}

	if err := EnsureCanCreateCentre(unbound); err != nil {
		t.Errorf("unbound admin should create a centre: %v", err)
	}
	if statusOf(t, EnsureCanCreateCentre(bound)) != fiber.StatusForbidden {
		t.Error("bound admin should not create a second centre")
	}
	if err := EnsureCentreManager(bound, centre); err != nil {
		t.Errorf("bound admin manages own centre: %v", err)
	}
	if statusOf(t, EnsureCentreManager(bound, uuid.New())) != fiber.StatusForbidden {
		t.Error("bound admin should not manage a foreign centre")
	}
	if err := EnsureCentreManager(super, uuid.New()); err != nil {
		t.Errorf("super admin manages any centre: %v", err)
	}
}

func TestResolveCentre(t *testing.T) {
	centre := uuid.New()
	bound := Actor{ID: uuid.New(), YouthCentreID: &centre}

	got, err := ResolveCentre(bound, nil)
	if err != nil || got == nil || *got != centre {
		t.Fatalf("default centre = %v, %v", got, err)
	}
	foreign := uuid.New()
	if _, err := ResolveCentre(bound, &foreign); statusOf(t, err) != fiber.StatusForbidden {
		t.Error("foreign centre should be refused")
	}
	super := Actor{ID: uuid.New(), IsSuperAdmin: true}
	if got, _ := ResolveCentre(super, &foreign); got == nil || *got != foreign {
		t.Error("super admin keeps requested centre")
	}
}

func TestEnsureCanModifyAttached(t *testing.T) {
	creator := uuid.New()
	eventOwner := uuid.New()

	tests := []struct {
		name  string
		actor Actor
		want  int
	}{
		{"creator", Actor{ID: creator}, 0},
		{"event owner", Actor{ID: eventOwner}, 0},
		{"super admin", Actor{ID: uuid.New(), IsSuperAdmin: true}, 0},
		{"stranger", Actor{ID: uuid.New()}, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureCanModifyAttached(tt.actor, creator, eventOwner, "chats")
			if got := statusOf(t, err); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
