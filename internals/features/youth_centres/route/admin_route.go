package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRepo "youthcentre_backend/internals/features/admins/repository"
	"youthcentre_backend/internals/features/youth_centres/controller"
	"youthcentre_backend/internals/features/youth_centres/repository"
	"youthcentre_backend/internals/features/youth_centres/service"
)

// YouthCentreAdminRoutes mounts /youth-centres. scopes is the same resolver the
// auth middleware reads through, so binding changes are visible on the next request.
func YouthCentreAdminRoutes(admin fiber.Router, db *gorm.DB, scopes service.ScopeInvalidator) {
	svc := service.NewYouthCentreService(
		repository.NewYouthCentreRepository(db),
		adminRepo.NewAdminRepository(db),
		scopes,
		nil,
	)
	ctl := controller.NewYouthCentreController(svc)

	g := admin.Group("/youth-centres")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/unassigned-admins", ctl.Unassigned)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Get("/:id/admins", ctl.Admins)
	g.Post("/:id/assign-admin", ctl.AssignAdmin)
	g.Post("/:id/remove-admin", ctl.RemoveAdmin)
}
