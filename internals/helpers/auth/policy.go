package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	EventTypeLocal         = "local"
	AttendanceTypeInPerson = "in-person"
)

/* =========================================================
   Ownership
========================================================= */

// EnsureCanModify: super-admin passes, otherwise the caller must own the row.
func EnsureCanModify(a Actor, ownerID uuid.UUID, label string) error {
	if a.IsSuperAdmin || ownerID == a.ID {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("You may only modify your own %s", label))
}

func EnsureCanView(a Actor, ownerID uuid.UUID, label string) error {
	if a.IsSuperAdmin || ownerID == a.ID {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("You may only view your own %s", label))
}

func EnsureSuperAdmin(a Actor, action string) error {
	if a.IsSuperAdmin {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("Only super admins can %s", action))
}

/* =========================================================
   Event content policy
========================================================= */

// EnsureEventContent limits regular admins to local, in-person events.
// Empty values are checked against what will be stored, so callers pass
// the merged (post-update) values.
func EnsureEventContent(a Actor, eventType, attendanceType string) error {
	if a.IsSuperAdmin {
		return nil
	}
	if eventType != EventTypeLocal {
		return fiber.NewError(fiber.StatusForbidden, "Regular admins can only manage local events")
	}
	if attendanceType != AttendanceTypeInPerson {
		return fiber.NewError(fiber.StatusForbidden, "Regular admins can only manage in-person events")
	}
	return nil
}

/* =========================================================
   Centre binding
========================================================= */

// EnsureCanCreateCentre: a regular admin already bound to a centre cannot open another.
func EnsureCanCreateCentre(a Actor) error {
	if a.IsSuperAdmin || a.YouthCentreID == nil {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "You are already assigned to a youth centre")
}

// EnsureCentreManager: super-admin or the admin bound to that centre.
func EnsureCentreManager(a Actor, centreID uuid.UUID) error {
	if a.IsSuperAdmin || a.BoundTo(centreID) {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "You may only manage admins of your own youth centre")
}

// ResolveCentre picks the centre a regular admin writes into: their own
// binding by default, and never a foreign one.
func ResolveCentre(a Actor, requested *uuid.UUID) (*uuid.UUID, error) {
	if a.IsSuperAdmin {
		return requested, nil
	}
	if requested == nil {
		return a.YouthCentreID, nil
	}
	if !a.BoundTo(*requested) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You may only use your own youth centre")
	}
	return requested, nil
}

/* =========================================================
   Records attached to an activity (chats, livestreams)
========================================================= */

// EnsureCanModifyAttached: the record's creator or the owner of the activity
// it hangs off may change it.
func EnsureCanModifyAttached(a Actor, ownerID, activityOwnerID uuid.UUID, label string) error {
	if a.IsSuperAdmin || ownerID == a.ID || activityOwnerID == a.ID {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("You may only modify your own %s", label))
}
