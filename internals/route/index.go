// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/configs"
	database "youthcentre_backend/internals/databases"
	activityRoute "youthcentre_backend/internals/features/activities/route"
	adminRepo "youthcentre_backend/internals/features/admins/repository"
	adminRoute "youthcentre_backend/internals/features/admins/route"
	adminService "youthcentre_backend/internals/features/admins/service"
	chatRoute "youthcentre_backend/internals/features/chats/route"
	inscriptionRoute "youthcentre_backend/internals/features/inscriptions/route"
	livestreamRoute "youthcentre_backend/internals/features/livestreams/route"
	paymentRoute "youthcentre_backend/internals/features/payments/route"
	userRoute "youthcentre_backend/internals/features/users/route"
	youthCentreRoute "youthcentre_backend/internals/features/youth_centres/route"
	"youthcentre_backend/internals/logger"
	"youthcentre_backend/internals/middlewares"
	authMiddleware "youthcentre_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()
	log := logger.Named("routes")

	log.Info("setting up base routes...")
	BaseRoutes(app)

	// one resolver for the auth middleware and for centre binding changes
	scopes := adminService.NewScopeResolver(adminRepo.NewAdminRepository(db), database.Redis, cfg.AdminScopeCacheTTL)

	log.Info("setting up ADMIN group (JWT + actor scope)...")
	admin := app.Group("/admin", authMiddleware.AuthMiddleware(authMiddleware.Options{
		Secret:   cfg.JWTSecret,
		Resolver: scopes,
	}))

	activityRoute.ActivityAdminRoutes(admin, db)
	inscriptionRoute.InscriptionAdminRoutes(admin, db, middlewares.ExportRateLimiter())
	paymentRoute.PaymentAdminRoutes(admin, db)
	youthCentreRoute.YouthCentreAdminRoutes(admin, db, scopes)
	chatRoute.ChatAdminRoutes(admin, db)
	livestreamRoute.LivestreamAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	adminRoute.SettingsAdminRoutes(admin, db)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "route not found")
	})
	log.Info("routes ready")
}
