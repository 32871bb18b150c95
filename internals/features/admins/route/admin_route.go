package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/admins/controller"
	"youthcentre_backend/internals/features/admins/repository"
	"youthcentre_backend/internals/features/admins/service"
)

// SettingsAdminRoutes mounts /settings on the admin group.
func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSettingsController(service.NewSettingsService(repository.NewAdminRepository(db)))

	g := admin.Group("/settings")
	g.Get("/", ctl.Get)
	g.Put("/", ctl.Update)
}
