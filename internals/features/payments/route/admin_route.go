package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/payments/controller"
	"youthcentre_backend/internals/features/payments/repository"
	"youthcentre_backend/internals/features/payments/service"
)

func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(service.NewPaymentService(repository.NewPaymentRepository(db), nil))

	g := admin.Group("/payments")
	g.Get("/", ctl.List)
	g.Get("/summary", ctl.Summary)
	g.Get("/:id", ctl.Get)
	g.Patch("/:id/status", ctl.UpdateStatus)
}
