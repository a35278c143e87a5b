package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// หน้า placeholder - ของจริง render ฝั่ง frontend
// มีไว้ให้ SessionGate มีปลายทางชี้ และให้เช็คว่า API ทำงานอยู่

func HomePage(c *fiber.Ctx) error {
	return c.SendString("✅ Check-in API is running...")
}

func OrientationPage(c *fiber.Ctx) error {
	return c.SendString("Orientation wizard")
}

func BasicInfoPage(c *fiber.Ctx) error {
	return c.SendString("Basic info (no-email check-in)")
}

func CompletePage(c *fiber.Ctx) error {
	return c.SendString("Check-in complete 🎉")
}
