package controller

import (
	"github.com/gofiber/fiber/v2"

	"youthcentre_backend/internals/features/chats/dto"
	"youthcentre_backend/internals/features/chats/service"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

type ChatController struct {
	svc *service.ChatService
}

func NewChatController(svc *service.ChatService) *ChatController {
	return &ChatController{svc: svc}
}

// GET /admin/chats?event_id=&is_active=&q=
func (ctl *ChatController) List(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ListChatsQuery{Q: c.Query("q"), IsActive: helper.QueryBool(c, "is_active")}
	if q.EventID, err = helper.QueryUUID(c, "event_id"); err != nil {
		return helper.FromError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.svc.List(helper.ReqCtx(c), actor, q, p)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", fiber.Map{"chats": rows},
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *ChatController) Get(c *fiber.Ctx) error {
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
	return helper.JsonOK(c, "ok", fiber.Map{"chat": m})
}

func (ctl *ChatController) Create(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	var req dto.CreateChatRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Create(helper.ReqCtx(c), actor, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "chat created", fiber.Map{"chat": m})
}

func (ctl *ChatController) Update(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateChatRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromError(c, err)
	}
	m, err := ctl.svc.Update(helper.ReqCtx(c), actor, id, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "chat updated", fiber.Map{"chat": m})
}

func (ctl *ChatController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "chat deleted", nil)
}
