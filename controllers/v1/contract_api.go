package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-crm-backend/controllers"
	contracthandler "hr-crm-backend/lib/contract"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
	contractapimodels "hr-crm-backend/models/api/contract"
)

type contractApiController struct {
	controllers.BaseAPIController
}

func InitContractApiRouters(app *fiber.App) {
	controller := contractApiController{}
	sales := middleware.RequireRole(models.UserRoleSales, models.UserRoleHr, models.UserRoleAdmin)
	party := middleware.RequireRole(models.UserRoleClient, models.UserRoleApplicant)
	app.Route("contracts", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", sales, controller.create)
		router.Get("my", party, controller.listMy)
		router.Get("", sales, controller.list)
		router.Get(":id", sales, controller.getByID)
		router.Put(":id/status", sales, controller.changeStatus)
		router.Put(":id/progress", sales, controller.setProgress)
		router.Post(":id/document", sales, controller.uploadDocument)
		router.Get(":id/document", sales, controller.getDocument)
	})
}

// @Summary Create a contract
// @Tags Contracts
// @Description Create a contract for an application with an accepted offer; the hire is recorded in the same step
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		contractapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts [post]
func (c *contractApiController) create(ctx *fiber.Ctx) error {
	var payload contractapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := contracthandler.Instance.Create(authutils.GetAuthContext(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Own contracts
// @Tags Contracts
// @Description Contracts where the caller is a party
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]contractapimodels.ContractView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts/my [get]
func (c *contractApiController) listMy(ctx *fiber.Ctx) error {
	list, err := contracthandler.Instance.ListMy(authutils.GetAuthContext(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list contracts"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List contracts
// @Tags Contracts
// @Description List contracts with an optional status filter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"contract status"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"limit"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]contractapimodels.ContractView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts [get]
func (c *contractApiController) list(ctx *fiber.Ctx) error {
	filter := contractapimodels.ContractFilter{
		Status: models.ContractStatus(ctx.Query("status")),
		Page:   ctx.QueryInt("page"),
		Limit:  ctx.QueryInt("limit"),
	}
	list, rowCount, err := contracthandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list contracts"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Contract details
// @Tags Contracts
// @Description Contract details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"contract id"
// @Success 200 {object} apimodels.Response{data=contractapimodels.ContractView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts/{id} [get]
func (c *contractApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := contracthandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, contracthandler.ErrContractNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the contract"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change the contract status
// @Tags Contracts
// @Description Change the contract status; terminal contracts stay put
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"contract id"
// @Param	body				body		contractapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts/{id}/status [put]
func (c *contractApiController) changeStatus(ctx *fiber.Ctx) error {
	var payload contractapimodels.StatusChangeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := contracthandler.Instance.ChangeStatus(ctx.Params("id"), payload)
	if err != nil {
		return sendContractError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update the contract progress
// @Tags Contracts
// @Description Update the progress percent; it can only grow
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"contract id"
// @Param	body				body		contractapimodels.ProgressRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts/{id}/progress [put]
func (c *contractApiController) setProgress(ctx *fiber.Ctx) error {
	var payload contractapimodels.ProgressRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := contracthandler.Instance.SetProgress(ctx.Params("id"), payload)
	if err != nil {
		return sendContractError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload the signed document
// @Tags Contracts
// @Description Upload the signed contract document as multipart form data under the "file" key
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"contract id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts/{id}/document [post]
func (c *contractApiController) uploadDocument(ctx *fiber.Ctx) error {
	fileName, data, err := readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = contracthandler.Instance.UploadDocument(ctx.Context(), ctx.Params("id"), fileName, data)
	if err != nil {
		return sendContractError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download the signed document
// @Tags Contracts
// @Description Download the signed contract document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"contract id"
// @Success 200 {file} binary
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contracts/{id}/document [get]
func (c *contractApiController) getDocument(ctx *fiber.Ctx) error {
	data, fileName, err := contracthandler.Instance.GetDocument(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("document not found"))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

func sendContractError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, contracthandler.ErrContractNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
}
