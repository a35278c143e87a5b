package routes

import (
	"github.com/SaladRabbit/registerv2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// checkInRoutes กำหนดเส้นทางสำหรับ Check-in API
func checkInRoutes(router fiber.Router) {
	router.Post("/check-in", controllers.CheckIn)
}
