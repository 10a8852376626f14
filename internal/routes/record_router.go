package routes

import (
	"github.com/labstack/echo/v4"

	"crm-system/internal/controllers"
)

// Generic-маршруты регистрируются последними: статические пути
// (/dashboard, /reports, /telegram) должны матчиться раньше :resource.
func runRecordRouter(api *echo.Group, c *controllers.RecordController) {
	api.GET("/:resource", c.ListRecords)
	api.POST("/:resource", c.CreateRecord)
	api.PATCH("/:resource/:id", c.UpdateRecord)
}
