package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals key where the auth middleware stores the resolved admin.
const LocActor = "actor"

// ErrInactiveAdmin is returned by resolvers for disabled accounts.
var ErrInactiveAdmin = errors.New("admin account is inactive")

// Actor is the acting admin of a request.
type Actor struct {
	ID            uuid.UUID
	IsSuperAdmin  bool
	YouthCentreID *uuid.UUID
}

func (a Actor) BoundTo(centreID uuid.UUID) bool {
	return a.YouthCentreID != nil && *a.YouthCentreID == centreID
}

// OwnerFilter returns the admin id a query must be restricted to, or nil
// for a super-admin.
func (a Actor) OwnerFilter() *uuid.UUID {
	if a.IsSuperAdmin {
		return nil
	}
	id := a.ID
	return &id
}

func SetActor(c *fiber.Ctx, a Actor) {
	c.Locals(LocActor, a)
}

// GetActor reads the acting admin; 401 when the route was not behind auth.
func GetActor(c *fiber.Ctx) (Actor, error) {
	if a, ok := c.Locals(LocActor).(Actor); ok && a.ID != uuid.Nil {
		return a, nil
	}
	return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - admin not resolved")
}
