package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/livestreams/controller"
	"youthcentre_backend/internals/features/livestreams/repository"
	"youthcentre_backend/internals/features/livestreams/service"
)

func LivestreamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewLivestreamController(service.NewLivestreamService(repository.NewLivestreamRepository(db), nil))

	g := admin.Group("/livestreams")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
