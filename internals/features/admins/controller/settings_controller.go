// file: internals/features/admins/controller/settings_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/admins/dto"
	"youthcentre_backend/internals/features/admins/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type SettingsController struct {
	svc *service.SettingsService
}

func NewSettingsController(svc *service.SettingsService) *SettingsController {
	return &SettingsController{svc: svc}
}

// GET /admin/settings
func (ctl *SettingsController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	out, err := ctl.svc.Get(helper.ReqCtx(c), actor)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "Settings retrieved", fiber.Map{"settings": out})
}

// PUT /admin/settings
func (ctl *SettingsController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	var req dto.UpdateSettingsRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.svc.Update(helper.ReqCtx(c), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Settings updated", fiber.Map{"settings": out})
}
