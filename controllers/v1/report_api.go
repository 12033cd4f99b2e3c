package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hr-crm-backend/controllers"
	analyticshandler "hr-crm-backend/lib/analytics"
	"hr-crm-backend/middleware"
	"hr-crm-backend/models"
	apimodels "hr-crm-backend/models/api"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	staff := middleware.RequireRole(models.UserRoleHr, models.UserRoleSales, models.UserRoleAdmin)
	app.Route("reports", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired(), staff)
		router.Get("applications/by-status", controller.applicationsByStatus)
		router.Get("applications/by-month", controller.applicationsByMonth)
		router.Get("hires/by-job", controller.hiresByJob)
		router.Get("revenue", controller.revenue)
		router.Get("revenue/xls", controller.revenueXLS)
	})
}

// @Summary Applications by status
// @Tags Reports
// @Description Application counts grouped by status
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.StatusCount}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/applications/by-status [get]
func (c *reportApiController) applicationsByStatus(ctx *fiber.Ctx) error {
	rows, err := analyticshandler.Instance.ApplicationsByStatus()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to build the report"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Applications by month
// @Tags Reports
// @Description Application counts per calendar month
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.MonthCount}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/applications/by-month [get]
func (c *reportApiController) applicationsByMonth(ctx *fiber.Ctx) error {
	rows, err := analyticshandler.Instance.ApplicationsByMonth()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to build the report"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Hires by job
// @Tags Reports
// @Description Hire counts per job
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.JobHires}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/hires/by-job [get]
func (c *reportApiController) hiresByJob(ctx *fiber.Ctx) error {
	rows, err := analyticshandler.Instance.HiresByJob()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to build the report"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Revenue report
// @Tags Reports
// @Description Contract value and commission sums by month and currency
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=reportapimodels.RevenueReport}
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/revenue [get]
func (c *reportApiController) revenue(ctx *fiber.Ctx) error {
	report, err := analyticshandler.Instance.Revenue()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to build the report"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// @Summary Revenue report as a workbook
// @Tags Reports
// @Description The revenue report exported as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reports/revenue/xls [get]
func (c *reportApiController) revenueXLS(ctx *fiber.Ctx) error {
	buf, err := analyticshandler.Instance.RevenueXLS()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to export the report"))
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="revenue_report.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
