package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/activities/controller"
	"youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/activities/repository"
	"youthcentre_backend/internals/features/activities/service"
)

// ActivityAdminRoutes mounts CRUD for events, educations, clubs and direct-activities.
//
//	admin := app.Group("/admin", authMiddleware)
//	route.ActivityAdminRoutes(admin, db)
func ActivityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	svc := service.NewActivityService(repository.NewActivityRepository(db), nil)

	for _, spec := range model.Kinds {
		ctl := controller.NewActivityController(svc, spec)
		g := admin.Group("/" + spec.Resource)

		g.Get("/", ctl.List)
		g.Post("/", ctl.Create)
		g.Get("/:id", ctl.Get)
		g.Put("/:id", ctl.Update)
		g.Delete("/:id", ctl.Delete)
	}
}
