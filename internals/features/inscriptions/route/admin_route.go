package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/inscriptions/controller"
	"youthcentre_backend/internals/features/inscriptions/repository"
	"youthcentre_backend/internals/features/inscriptions/service"
)

// InscriptionAdminRoutes mounts, per kind:
//
//	GET   /<kind>-inscriptions
//	GET   /<kind>-inscriptions/export
//	PATCH /<kind>-inscriptions/:id/status
//	GET   /<resource>/:id/participants
func InscriptionAdminRoutes(admin fiber.Router, db *gorm.DB, exportLimiter fiber.Handler) {
	svc := service.NewWorkflowService(repository.NewInscriptionRepository(db), nil)

	for _, spec := range activityModel.Kinds {
		ctl := controller.NewInscriptionController(svc, spec)

		g := admin.Group("/" + spec.InscriptionResource)
		g.Get("/", ctl.List)
		g.Get("/export", exportLimiter, ctl.Export)
		g.Patch("/:id/status", ctl.UpdateStatus)

		admin.Get("/"+spec.Resource+"/:id/participants", ctl.Participants)
	}
}
