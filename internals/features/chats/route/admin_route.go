package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/chats/controller"
	"youthcentre_backend/internals/features/chats/repository"
	"youthcentre_backend/internals/features/chats/service"
)

func ChatAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewChatController(service.NewChatService(repository.NewChatRepository(db), nil))

	g := admin.Group("/chats")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
