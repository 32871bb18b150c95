package helper

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ReqCtx returns the request-scoped context (set with a timeout in main).
func ReqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "resource not found")
	}
	return id, nil
}

// QueryUUID parses an optional uuid query parameter; invalid values become
// a 422 on that field.
func QueryUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		fe := FieldErrors{}
		fe.Add(key, "The "+key+" must be a valid UUID.")
		return nil, fe
	}
	return &id, nil
}

// ParseBody decodes the JSON body; a malformed body is a 422 like the
// other input failures.
func ParseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		fe := FieldErrors{}
		fe.Add("body", "Malformed request body.")
		return fe
	}
	return nil
}
