package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	// รวม routes จากแต่ละ module
	api := app.Group("/api")
	checkInRoutes(api)
	orientationRoutes(api)
	groupRoutes(api)

	pageRoutes(app)
}
