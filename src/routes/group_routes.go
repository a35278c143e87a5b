package routes

import (
	"github.com/SaladRabbit/registerv2/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// groupRoutes กำหนดเส้นทางสำหรับ Group API (ข้อมูลอ้างอิงให้ผู้ใช้เลือกกลุ่ม)
func groupRoutes(router fiber.Router) {
	groups := router.Group("/groups")
	groups.Get("/", controllers.GetGroups)
	groups.Post("/", controllers.CreateGroup)
	groups.Post("/by-distance", controllers.GroupsByDistance)
	groups.Post("/by-day", controllers.GroupsByDay)
	groups.Get("/:id/qrcode", controllers.GroupQRCode)
}
