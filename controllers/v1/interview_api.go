package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-crm-backend/controllers"
	interviewhandler "hr-crm-backend/lib/interview"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
	interviewapimodels "hr-crm-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	hr := middleware.RequireRole(models.UserRoleHr, models.UserRoleAdmin)
	app.Route("interviews", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", hr, controller.schedule)
		router.Get("upcoming", hr, controller.listUpcoming)
		router.Get("by-application/:id", hr, controller.listByApplication)
		router.Get(":id", hr, controller.getByID)
		router.Put(":id/status", hr, controller.changeStatus)
		router.Put(":id/reschedule", hr, controller.reschedule)
		router.Delete(":id", hr, controller.delete)
		router.Put(":id/confirm", middleware.RequireRole(models.UserRoleApplicant), controller.confirm)
	})
}

// @Summary Schedule an interview
// @Tags Interviews
// @Description Schedule an interview for an active application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		interviewapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewhandler.Instance.Schedule(payload)
	if err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Upcoming interviews
// @Tags Interviews
// @Description Interviews scheduled in the future
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"limit"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/upcoming [get]
func (c *interviewApiController) listUpcoming(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.ListUpcoming(ctx.QueryInt("page"), ctx.QueryInt("limit"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list interviews"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Interviews of an application
// @Tags Interviews
// @Description Interviews of an application, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"application id"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/by-application/{id} [get]
func (c *interviewApiController) listByApplication(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.ListByApplication(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list interviews"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Interview details
// @Tags Interviews
// @Description Interview details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"interview id"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, interviewhandler.ErrInterviewNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the interview"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change the interview status
// @Tags Interviews
// @Description Record the interview outcome
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"interview id"
// @Param	body				body		interviewapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/status [put]
func (c *interviewApiController) changeStatus(ctx *fiber.Ctx) error {
	var payload interviewapimodels.StatusChangeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := interviewhandler.Instance.ChangeStatus(ctx.Params("id"), payload)
	if err != nil {
		return sendInterviewError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reschedule an interview
// @Tags Interviews
// @Description Move the interview to a new time
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"interview id"
// @Param	body				body		interviewapimodels.RescheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/reschedule [put]
func (c *interviewApiController) reschedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.RescheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := interviewhandler.Instance.Reschedule(ctx.Params("id"), payload)
	if err != nil {
		return sendInterviewError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cancel and delete an interview
// @Tags Interviews
// @Description Cancel and delete an interview
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"interview id"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	err := interviewhandler.Instance.Delete(ctx.Params("id"))
	if err != nil {
		return sendInterviewError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Confirm the interview
// @Tags Interviews
// @Description The applicant confirms the own scheduled interview
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"interview id"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/confirm [put]
func (c *interviewApiController) confirm(ctx *fiber.Ctx) error {
	err := interviewhandler.Instance.Confirm(authutils.GetAuthContext(ctx), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, interviewhandler.ErrNotOwner) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, interviewhandler.ErrInterviewNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func sendInterviewError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, interviewhandler.ErrInterviewNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
