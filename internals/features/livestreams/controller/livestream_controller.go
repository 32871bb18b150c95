package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/livestreams/dto"
	"youthcentre_backend/internals/features/livestreams/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type LivestreamController struct {
	svc *service.LivestreamService
}

func NewLivestreamController(svc *service.LivestreamService) *LivestreamController {
	return &LivestreamController{svc: svc}
}

// GET /admin/livestreams?event_id=&status=
func (ctl *LivestreamController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ListLivestreamsQuery{Status: strings.ToLower(strings.TrimSpace(c.Query("status")))}
	if q.EventID, err = helper.QueryUUID(c, "event_id"); err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.svc.List(helper.ReqCtx(c), actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", fiber.Map{"livestreams": rows},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *LivestreamController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", fiber.Map{"livestream": m})
}

func (ctl *LivestreamController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	var req dto.CreateLivestreamRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "livestream created", fiber.Map{"livestream": m})
}

func (ctl *LivestreamController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateLivestreamRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "livestream updated", fiber.Map{"livestream": m})
}

func (ctl *LivestreamController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "livestream deleted", nil)
}
