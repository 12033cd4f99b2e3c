package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-crm-backend/controllers"
	applicanthandler "hr-crm-backend/lib/applicant"
	authutils "hr-crm-backend/lib/utils/auth-utils"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
	applicantapimodels "hr-crm-backend/models/api/applicant"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	staff := middleware.RequireRole(models.UserRoleHr, models.UserRoleSales, models.UserRoleAdmin)
	app.Route("applicants", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", middleware.RequireRole(models.UserRoleApplicant), controller.myProfile)
		router.Put("me", middleware.RequireRole(models.UserRoleApplicant), controller.updateMyProfile)
		router.Post("me/resume", middleware.RequireRole(models.UserRoleApplicant), controller.uploadResume)
		router.Get(":id", staff, controller.getByID)
		router.Get(":id/resume", staff, controller.getResume)
	})
}

// @Summary Own applicant profile
// @Tags Applicants
// @Description Own applicant profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ProfileView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/me [get]
func (c *applicantApiController) myProfile(ctx *fiber.Ctx) error {
	resp, err := applicanthandler.Instance.GetMyProfile(authutils.GetAuthContext(ctx))
	if err != nil {
		if errors.Is(err, applicanthandler.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the profile"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update the own applicant profile
// @Tags Applicants
// @Description Update the own applicant profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		applicantapimodels.ProfileUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/me [put]
func (c *applicantApiController) updateMyProfile(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ProfileUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicanthandler.Instance.UpdateMyProfile(authutils.GetAuthContext(ctx), payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to update the profile"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload a resume
// @Tags Applicants
// @Description Upload a resume as multipart form data under the "file" key
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/me/resume [post]
func (c *applicantApiController) uploadResume(ctx *fiber.Ctx) error {
	fileName, data, err := readFormFile(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicanthandler.Instance.UploadResume(ctx.Context(), authutils.GetAuthContext(ctx), fileName, data)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to upload the resume"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Applicant profile
// @Tags Applicants
// @Description Applicant profile by id, staff only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"profile id"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ProfileView}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id} [get]
func (c *applicantApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := applicanthandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, applicanthandler.ErrProfileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to load the profile"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download a resume
// @Tags Applicants
// @Description Download the resume of an applicant, staff only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"profile id"
// @Success 200 {file} binary
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicants/{id}/resume [get]
func (c *applicantApiController) getResume(ctx *fiber.Ctx) error {
	data, fileName, err := applicanthandler.Instance.GetResume(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("resume not found"))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// readFormFile pulls the uploaded file out of the "file" multipart field.
func readFormFile(ctx *fiber.Ctx) (fileName string, data []byte, err error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", nil, errors.New("file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("failed to open the uploaded file")
		return "", nil, errors.New("failed to read the uploaded file")
	}
	defer file.Close()
	data, err = io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("failed to read the uploaded file")
		return "", nil, errors.New("failed to read the uploaded file")
	}
	return fileHeader.Filename, data, nil
}
