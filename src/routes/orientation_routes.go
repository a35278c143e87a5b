package routes

import (
	"github.com/SaladRabbit/registerv2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// orientationRoutes กำหนดเส้นทางสำหรับ Orientation wizard API
// part1 = step 0 (ใช้ร่วมกันทั้ง path มี/ไม่มีอีเมล) / part2 = step สุดท้าย
func orientationRoutes(router fiber.Router) {
	orientation := router.Group("/orientation")
	orientation.Post("/part1", controllers.SubmitBasicInfo)
	orientation.Post("/part2", controllers.CompleteOrientation)
}
