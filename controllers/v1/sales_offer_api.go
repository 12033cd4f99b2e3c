package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-crm-backend/controllers"
	salesofferhandler "hr-crm-backend/lib/sales-offer"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
	offerapimodels "hr-crm-backend/models/api/offer"
)

type salesOfferApiController struct {
	controllers.BaseAPIController
}

func InitSalesOfferApiRouters(app *fiber.App) {
	controller := salesOfferApiController{}
	sales := middleware.RequireRole(models.UserRoleSales, models.UserRoleAdmin)
	staff := middleware.RequireRole(models.UserRoleHr, models.UserRoleSales, models.UserRoleAdmin)
	applicant := middleware.RequireRole(models.UserRoleApplicant)
	app.Route("offers", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", sales, controller.create)
		router.Get("my", applicant, controller.listMy)
		router.Get("", staff, controller.list)
		router.Get(":id", staff, controller.getByID)
		router.Put(":id/response", applicant, controller.applicantResponse)
		router.Put(":id/review", sales, controller.salesReview)
	})
}

// @Summary Create an offer
// @Tags Offers
// @Description Create an offer for an application at the offer stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		offerapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers [post]
func (c *salesOfferApiController) create(ctx *fiber.Ctx) error {
	var payload offerapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := salesofferhandler.Instance.Create(authutils.GetAuthContext(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Own offers
// @Tags Offers
// @Description Offers extended to the current applicant
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]offerapimodels.OfferView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/my [get]
func (c *salesOfferApiController) listMy(ctx *fiber.Ctx) error {
	list, err := salesofferhandler.Instance.ListMy(authutils.GetAuthContext(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list offers"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List offers
// @Tags Offers
// @Description List offers with an optional application/status filter
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   application_id		query		string	false	"application id"
// @Param   status				query		string	false	"offer status"
// @Param   page				query		int		false	"page"
// @Param   limit				query		int		false	"limit"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]offerapimodels.OfferView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers [get]
func (c *salesOfferApiController) list(ctx *fiber.Ctx) error {
	filter := offerapimodels.OfferFilter{
		ApplicationID: ctx.Query("application_id"),
		Status:        models.OfferStatus(ctx.Query("status")),
		Page:          ctx.QueryInt("page"),
		Limit:         ctx.QueryInt("limit"),
	}
	list, rowCount, err := salesofferhandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to list offers"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Offer details
// @Tags Offers
// @Description Offer details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"offer id"
// @Success 200 {object} apimodels.Response{data=offerapimodels.OfferView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id} [get]
func (c *salesOfferApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := salesofferhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, salesofferhandler.ErrOfferNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the offer"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Respond to an offer
// @Tags Offers
// @Description The applicant accepts or rejects the own pending offer
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"offer id"
// @Param	body				body		offerapimodels.ApplicantResponseRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/response [put]
func (c *salesOfferApiController) applicantResponse(ctx *fiber.Ctx) error {
	var payload offerapimodels.ApplicantResponseRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := salesofferhandler.Instance.ApplicantResponse(authutils.GetAuthContext(ctx), ctx.Params("id"), payload)
	if err != nil {
		return sendOfferError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Review a rejected offer
// @Tags Offers
/// @Description Sales resolves an applicant rejection: approve a renegotiation or finalize the rejection
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"offer id"
// @Param	body				body		offerapimodels.SalesReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/offers/{id}/review [put]
func (c *salesOfferApiController) salesReview(ctx *fiber.Ctx) error {
	var payload offerapimodels.SalesReviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := salesofferhandler.Instance.SalesReview(authutils.GetAuthContext(ctx), ctx.Params("id"), payload)
	if err != nil {
		return sendOfferError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// sendOfferError maps negotiation failures: a missing record is 404, an
// ownership failure is 403, any replay or ordering violation is 409.
func sendOfferError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, salesofferhandler.ErrOfferNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, salesofferhandler.ErrNotOwner) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
}
