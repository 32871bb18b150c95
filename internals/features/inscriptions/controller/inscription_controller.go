// file: internals/features/inscriptions/controller/inscription_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	activityDTO "youthcentre_backend/internals/features/activities/dto"
	activityModel "youthcentre_backend/internals/features/activities/model"
	"youthcentre_backend/internals/features/inscriptions/dto"
	"youthcentre_backend/internals/features/inscriptions/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InscriptionController serves one activity kind's inscriptions.
type InscriptionController struct {
	svc  *service.WorkflowService
	spec activityModel.KindSpec
}

func NewInscriptionController(svc *service.WorkflowService, spec activityModel.KindSpec) *InscriptionController {
	return &InscriptionController{svc: svc, spec: spec}
}

func (ctl *InscriptionController) parseQuery(c *fiber.Ctx) (dto.ListInscriptionsQuery, error) {
	q := dto.ListInscriptionsQuery{
		Status: c.Query("status"),
		Q:      c.Query("q"),
	}
	var err error
	// accept both ?event_id= and the generic ?activity_id=
	key := ctl.spec.ParentParam
	if c.Query(key) == "" && c.Query("activity_id") != "" {
		key = "activity_id"
	}
	if q.ActivityID, err = helper.QueryUUID(c, key); err != nil {
		return q, err
	}
	if q.UserID, err = helper.QueryUUID(c, "user_id"); err != nil {
		return q, err
	}
	return q, nil
}

// GET /admin/<kind>-inscriptions
func (ctl *InscriptionController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q, err := ctl.parseQuery(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 200)

	rows, total, err := ctl.svc.List(helper.ReqCtx(c), ctl.spec, actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok",
		fiber.Map{"inscriptions": rows},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)),
	)
}

// PATCH /admin/<kind>-inscriptions/:id/status
func (ctl *InscriptionController) UpdateStatus(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateInscriptionStatusRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}

	out, err := ctl.svc.UpdateStatus(helper.ReqCtx(c), ctl.spec, actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Inscription status updated", fiber.Map{"inscription": out})
}

// GET /admin/<kind>-inscriptions/export
func (ctl *InscriptionController) Export(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q, err := ctl.parseQuery(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	buf, err := ctl.svc.Export(helper.ReqCtx(c), ctl.spec, actor, q)
	if err != nil {
		return helper.FromError(c, err)
	}

	filename := fmt.Sprintf("%s-%s.xlsx", ctl.spec.InscriptionResource, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// GET /admin/<resource>/:id/participants
func (ctl *InscriptionController) Participants(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	act, rows, err := ctl.svc.Participants(helper.ReqCtx(c), ctl.spec, actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		ctl.spec.Singular: activityDTO.ToActivityResponse(*act),
		"participants":    rows,
	})
}
