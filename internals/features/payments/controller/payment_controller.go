// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/payments/dto"
	"youthcentre_backend/internals/features/payments/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type PaymentController struct {
	svc *service.PaymentService
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{svc: svc}
}

// ?event_id=&user_id=&status=&from=YYYY-MM-DD&to=YYYY-MM-DD
func parseListQuery(c *fiber.Ctx) (dto.ListPaymentsQuery, error) {
	q := dto.ListPaymentsQuery{Status: strings.ToLower(strings.TrimSpace(c.Query("status")))}
	var err error
	if q.EventID, err = helper.QueryUUID(c, "event_id"); err != nil {
		return q, err
	}
	if q.UserID, err = helper.QueryUUID(c, "user_id"); err != nil {
		return q, err
	}
	q.From, q.To, err = helper.QueryDateRange(c)
	return q, err
}

// GET /admin/payments
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q, err := parseListQuery(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.svc.List(helper.ReqCtx(c), actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok",
		fiber.Map{"payments": rows},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)),
	)
}

// GET /admin/payments/summary
func (ctl *PaymentController) Summary(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q, err := parseListQuery(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	out, err := ctl.svc.Summary(helper.ReqCtx(c), actor, q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"summary": out})
}

// GET /admin/payments/:id
func (ctl *PaymentController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	row, err := ctl.svc.Get(helper.ReqCtx(c), actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"payment": row})
}

// PATCH /admin/payments/:id/status
func (ctl *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdatePaymentStatusRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.UpdateStatus(helper.ReqCtx(c), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Payment status updated", fiber.Map{"payment": m})
}
