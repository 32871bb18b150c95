package controller

import (
	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/users/dto"
	"youthcentre_backend/internals/features/users/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /admin/users?wilaya=&commune=&q=
func (ctl *UserController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ListUsersQuery{Wilaya: c.Query("wilaya"), Commune: c.Query("commune"), Q: c.Query("q")}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.svc.List(helper.ReqCtx(c), actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", fiber.Map{"users": rows},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

// GET /admin/users/:id
func (ctl *UserController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	u, ins, err := ctl.svc.Get(helper.ReqCtx(c), actor, id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{"user": u, "inscriptions": ins})
}
