package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-crm-backend/controllers"
	gpthandler "hr-crm-backend/lib/gpt"
	jobhandler "hr-crm-backend/lib/job"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
	jobapimodels "hr-crm-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	staffOrClient := middleware.RequireRole(models.UserRoleClient, models.UserRoleHr, models.UserRoleAdmin)
	app.Route("jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get("my", middleware.RequireRole(models.UserRoleClient), controller.listMy)
		router.Post("", staffOrClient, controller.create)
		router.Post("gen-description", staffOrClient, controller.genDescription)
		router.Get(":id", controller.getByID)
		router.Put(":id", staffOrClient, controller.update)
		router.Delete(":id", staffOrClient, controller.delete)
		router.Put(":id/status", staffOrClient, controller.setStatus)
	})
}

// @Summary List jobs
// @Tags Jobs
// @Description List jobs; applicants see only open ones
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"job status"
// @Param   search				query		string	false	"title/location substring"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"limit"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	filter := jobapimodels.JobFilter{
		Status: models.JobStatus(ctx.Query("status")),
		Search: ctx.Query("search"),
		Page:   ctx.QueryInt("page"),
		Limit:  ctx.QueryInt("limit"),
	}
	authCtx := authutils.GetAuthContext(ctx)
	var (
		list     []jobapimodels.JobView
		rowCount int64
		err      error
	)
	if authCtx.Role == models.UserRoleApplicant {
		list, rowCount, err = jobhandler.Instance.ListOpen(filter)
	} else {
		list, rowCount, err = jobhandler.Instance.List(filter)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list jobs"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary List own jobs
// @Tags Jobs
// @Description List the jobs of the current client
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"limit"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/my [get]
func (c *jobApiController) listMy(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.ListMy(authutils.GetAuthContext(ctx), ctx.QueryInt("page"), ctx.QueryInt("limit"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list jobs"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a job
// @Tags Jobs
// @Description Create a job; a client creates it under the own company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(authutils.GetAuthContext(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to create the job"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Generate a job description
// @Tags Jobs
// @Description Generate a job description from a short outline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		jobapimodels.GenDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.GenDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/gen-description [post]
func (c *jobApiController) genDescription(ctx *fiber.Ctx) error {
	var payload jobapimodels.GenDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GenerateJobDescription(payload.Text)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to generate the description"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Job details
// @Tags Jobs
// @Description Job details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job id"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, jobhandler.ErrJobNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the job"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a job
// @Tags Jobs
// @Description Update a job; a client may touch only own jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job id"
// @Param	body				body		jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := jobhandler.Instance.Update(authutils.GetAuthContext(ctx), ctx.Params("id"), payload)
	if err != nil {
		return sendJobError(ctx, err, "failed to update the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a job
// @Tags Jobs
// @Description Delete a job; a client may touch only own jobs
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	err := jobhandler.Instance.Delete(authutils.GetAuthContext(ctx), ctx.Params("id"))
	if err != nil {
		return sendJobError(ctx, err, "failed to delete the job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change the job status
// @Tags Jobs
// @Description Open or close a job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"job id"
// @Param	body				body		jobapimodels.JobStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/status [put]
func (c *jobApiController) setStatus(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := jobhandler.Instance.SetStatus(authutils.GetAuthContext(ctx), ctx.Params("id"), payload.Status)
	if err != nil {
		return sendJobError(ctx, err, "failed to change the job status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func sendJobError(ctx *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, jobhandler.ErrJobNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, jobhandler.ErrNotOwner) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(fallback))
}
