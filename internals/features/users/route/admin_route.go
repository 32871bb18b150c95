package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/users/controller"
	"youthcentre_backend/internals/features/users/repository"
	"youthcentre_backend/internals/features/users/service"
)

// UserAdminRoutes is read-only; users register through the public app.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(service.NewUserService(repository.NewUserRepository(db)))

	g := admin.Group("/users")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
}
