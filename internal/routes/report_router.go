package routes

import (
	"github.com/labstack/echo/v4"

	"crm-system/internal/controllers"
)

func runReportRouter(api *echo.Group, c *controllers.ReportController) {
	api.GET("/dashboard", c.GetDashboard)
	api.GET("/reports/requests", c.GetRequestsReport)
}
