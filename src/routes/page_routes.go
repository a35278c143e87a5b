package routes

import (
	"github.com/SaladRabbit/registerv2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// pageRoutes หน้า placeholder ที่ SessionGate ใช้เป็นปลายทาง redirect
func pageRoutes(app *fiber.App) {
	app.Get("/", controllers.HomePage)
	app.Get("/orientation", controllers.OrientationPage)
	app.Get("/basic-info", controllers.BasicInfoPage)
	app.Get("/complete", controllers.CompletePage)
}
