package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

type fakeResolver map[uuid.UUID]helperAuth.Actor

func (f fakeResolver) Resolve(_ context.Context, id uuid.UUID) (helperAuth.Actor, error) {
	a, ok := f[id]
	if !ok {
		return helperAuth.Actor{}, gorm.ErrRecordNotFound
	}
	if a.ID == uuid.Nil {
		return helperAuth.Actor{}, helperAuth.ErrInactiveAdmin
	}
	return a, nil
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	active := uuid.New()
	inactive := uuid.New()
	resolver := fakeResolver{
		active:   {ID: active, IsSuperAdmin: true},
		inactive: {},
	}

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(AuthMiddleware(Options{Secret: testSecret, Resolver: resolver}))
	app.Get("/me", func(c *fiber.Ctx) error {
		a, err := helperAuth.GetActor(c)
		if err != nil {
			return err
		}
		return c.SendString(a.ID.String())
	})

	future := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", fiber.StatusUnauthorized},
		{"bad format", "Token abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", fiber.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.MapClaims{"id": active.String(), "exp": time.Now().Add(-time.Hour).Unix()}), fiber.StatusUnauthorized},
		{"missing id", "Bearer " + sign(t, jwt.MapClaims{"exp": future}), fiber.StatusUnauthorized},
		{"unknown admin", "Bearer " + sign(t, jwt.MapClaims{"id": uuid.NewString(), "exp": future}), fiber.StatusUnauthorized},
		{"inactive admin", "Bearer " + sign(t, jwt.MapClaims{"id": inactive.String(), "exp": future}), fiber.StatusForbidden},
		{"valid", "Bearer " + sign(t, jwt.MapClaims{"id": active.String(), "exp": future}), fiber.StatusOK},
		{"valid lowercase scheme", "bearer  " + sign(t, jwt.MapClaims{"id": active.String(), "exp": future}), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestValidateTokenExpirySkew(t *testing.T) {
	justExpired := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
	if err := validateTokenExpiry(justExpired, 30*time.Second); err != nil {
		t.Errorf("token within skew should pass: %v", err)
	}
	if err := validateTokenExpiry(justExpired, 0); err == nil {
		t.Error("token past exp without skew should fail")
	}
	if err := validateTokenExpiry(jwt.MapClaims{}, time.Second); err == nil {
		t.Error("token without exp should fail")
	}
}
