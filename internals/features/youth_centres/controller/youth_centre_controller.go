// file: internals/features/youth_centres/controller/youth_centre_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/youth_centres/dto"
	"youthcentre_backend/internals/features/youth_centres/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type YouthCentreController struct {
	svc *service.YouthCentreService
}

func NewYouthCentreController(svc *service.YouthCentreService) *YouthCentreController {
	return &YouthCentreController{svc: svc}
}

// GET /admin/youth-centres
func (ctl *YouthCentreController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ListYouthCentresQuery{
		Wilaya:   c.Query("wilaya"),
		Q:        c.Query("q"),
		IsActive: helper.QueryBool(c, "is_active"),
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.svc.List(helper.ReqCtx(c), actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok",
		fiber.Map{"youth_centres": rows},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)),
	)
}

// GET /admin/youth-centres/:id
func (ctl *YouthCentreController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Get(helper.ReqCtx(c), actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"youth_centre": m})
}

// POST /admin/youth-centres
func (ctl *YouthCentreController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	var req dto.CreateYouthCentreRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Youth centre created", fiber.Map{"youth_centre": m})
}

// PUT /admin/youth-centres/:id
func (ctl *YouthCentreController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateYouthCentreRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Youth centre updated", fiber.Map{"youth_centre": m})
}

// DELETE /admin/youth-centres/:id
func (ctl *YouthCentreController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.svc.Delete(helper.ReqCtx(c), actor, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Youth centre deleted", nil)
}

// GET /admin/youth-centres/:id/admins
func (ctl *YouthCentreController) Admins(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	rows, err := ctl.svc.Admins(helper.ReqCtx(c), actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"admins": dto.ToAdminBriefs(rows)})
}

// GET /admin/youth-centres/unassigned-admins
func (ctl *YouthCentreController) Unassigned(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	rows, err := ctl.svc.Unassigned(helper.ReqCtx(c), actor)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"admins": dto.ToAdminBriefs(rows)})
}

// POST /admin/youth-centres/:id/assign-admin
func (ctl *YouthCentreController) AssignAdmin(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.AdminAssignmentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	a, err := ctl.svc.AssignAdmin(helper.ReqCtx(c), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Admin assigned to youth centre", fiber.Map{"admin": dto.ToAdminBrief(*a)})
}

// POST /admin/youth-centres/:id/remove-admin
func (ctl *YouthCentreController) RemoveAdmin(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.AdminAssignmentRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	a, err := ctl.svc.RemoveAdmin(helper.ReqCtx(c), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Admin removed from youth centre", fiber.Map{"admin": dto.ToAdminBrief(*a)})
}
