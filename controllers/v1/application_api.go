package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-crm-backend/controllers"
	applicationhandler "hr-crm-backend/lib/application"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
	applicationapimodels "hr-crm-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	staff := middleware.RequireRole(models.UserRoleHr, models.UserRoleSales, models.UserRoleAdmin)
	hr := middleware.RequireRole(models.UserRoleHr, models.UserRoleAdmin)
	applicant := middleware.RequireRole(models.UserRoleApplicant)
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", applicant, controller.apply)
		router.Get("my", applicant, controller.listMy)
		router.Get("", staff, controller.list)
		router.Get(":id", staff, controller.getByID)
		router.Get(":id/timeline", staff, controller.timeline)
		router.Put(":id/status", hr, controller.changeStatus)
		router.Put(":id/withdraw", applicant, controller.withdraw)
	})
}

// @Summary Apply for a job
// @Tags Applications
// @Description Apply for an open job; one active application per job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicationhandler.Instance.Apply(authutils.GetAuthContext(ctx), payload)
	if err != nil {
		if errors.Is(err, applicationhandler.ErrAlreadyApplied) || errors.Is(err, applicationhandler.ErrJobNotOpen) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to submit the application"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Own applications
// @Tags Applications
// @Description Applications of the current applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/my [get]
func (c *applicationApiController) listMy(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.ListMy(authutils.GetAuthContext(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list applications"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List applications
// @Tags Applications
// @Description List applications with an optional job/status filter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id				query		string	false	"job id"
// @Param   status				query		string	false	"application status"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"limit"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	filter := applicationapimodels.ApplicationFilter{
		JobID:  ctx.Query("job_id"),
		Status: models.ApplicationStatus(ctx.Query("status")),
		Page:   ctx.QueryInt("page"),
		Limit:  ctx.QueryInt("limit"),
	}
	list, rowCount, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list applications"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Application details
// @Tags Applications
// @Description Application details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"application id"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := applicationhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, applicationhandler.ErrApplicationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the application"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Application timeline
// @Tags Applications
// @Description Status history of an application, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"application id"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.TimelineView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/timeline [get]
func (c *applicationApiController) timeline(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.Timeline(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the timeline"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Change the application status
// @Tags Applications
// @Description Move the application through its lifecycle
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"application id"
// @Param	body				body		applicationapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationApiController) changeStatus(ctx *fiber.Ctx) error {
	var payload applicationapimodels.StatusChangeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicationhandler.Instance.ChangeStatus(authutils.GetAuthContext(ctx), ctx.Params("id"), payload)
	if err != nil {
		return sendApplicationError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Withdraw the application
// @Tags Applications
// @Description The applicant pulls the own application out of the process
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"application id"
// @Param	body				body		applicationapimodels.WithdrawRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/withdraw [put]
func (c *applicationApiController) withdraw(ctx *fiber.Ctx) error {
	var payload applicationapimodels.WithdrawRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicationhandler.Instance.Withdraw(authutils.GetAuthContext(ctx), ctx.Params("id"), payload.Notes)
	if err != nil {
		return sendApplicationError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// sendApplicationError maps lifecycle failures: a missing record is 404, an
// ownership failure is 403, anything the transition table refused is 409.
func sendApplicationError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, applicationhandler.ErrApplicationNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, applicationhandler.ErrNotOwner) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
}
