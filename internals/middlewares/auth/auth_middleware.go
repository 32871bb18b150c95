// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helperAuth "youthcentre_backend/internals/helpers/auth"
	"youthcentre_backend/internals/logger"
)

// ActorResolver loads the admin behind a token id.
type ActorResolver interface {
	Resolve(ctx context.Context, adminID uuid.UUID) (helperAuth.Actor, error)
}

type Options struct {
	Secret   string
	Resolver ActorResolver
	// ExpirySkew tolerates small clock drift on exp.
	ExpirySkew time.Duration
}

// AuthMiddleware verifies the bearer JWT (HS256, claim "id") and stores the
// acting admin in Locals for helperAuth.GetActor.
func AuthMiddleware(opts Options) fiber.Handler {
	if opts.ExpirySkew == 0 {
		opts.ExpirySkew = 30 * time.Second
	}
	log := logger.Named("auth")

	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if opts.Secret == "" {
			log.Error("JWT secret is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(opts.Secret), nil
		}); err != nil {
			log.Debugw("token parse failed", "err", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, opts.ExpirySkew); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		adminID, err := extractAdminID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}

		actor, err := opts.Resolver.Resolve(c.UserContext(), adminID)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			case errors.Is(err, helperAuth.ErrInactiveAdmin):
				return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
			}
			log.Errorw("resolve admin failed", "admin_id", adminID, "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		helperAuth.SetActor(c, actor)
		c.Locals("admin_id", adminID.String())
		return c.Next()
	}
}
