// file: internals/features/activities/controller/activity_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/activities/dto"
	"youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/activities/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

/* =======================================================
   CONTROLLER (one instance per activity kind)
   ======================================================= */

type ActivityController struct {
	svc  *service.ActivityService
	spec model.KindSpec
}

func NewActivityController(svc *service.ActivityService, spec model.KindSpec) *ActivityController {
	return &ActivityController{svc: svc, spec: spec}
}

// GET /admin/<resource>
func (ctl *ActivityController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var q dto.ListActivitiesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	q.IsActive = helper.QueryBool(c, "is_active")
	if q.CenterID, err = helper.QueryUUID(c, "center_id"); err != nil {
		return helper.FromError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.svc.List(helper.ReqCtx(c), ctl.spec, actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}

	return helper.JsonList(c, "ok",
		fiber.Map{ctl.spec.PluralKey: dto.ToActivityResponses(rows)},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)),
	)
}

// GET /admin/<resource>/:id
func (ctl *ActivityController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Get(helper.ReqCtx(c), ctl.spec, actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{ctl.spec.Singular: dto.ToActivityResponse(*m)})
}

// POST /admin/<resource>
func (ctl *ActivityController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	var req dto.CreateActivityRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), ctl.spec, actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, ctl.spec.Singular+" created", fiber.Map{ctl.spec.Singular: dto.ToActivityResponse(*m)})
}

// PUT /admin/<resource>/:id
func (ctl *ActivityController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateActivityRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), ctl.spec, actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, ctl.spec.Singular+" updated", fiber.Map{ctl.spec.Singular: dto.ToActivityResponse(*m)})
}

// DELETE /admin/<resource>/:id
func (ctl *ActivityController) Delete(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctl.svc.Delete(helper.ReqCtx(c), ctl.spec, actor, id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, ctl.spec.Singular+" deleted", nil)
}
