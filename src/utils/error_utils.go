// error_utils.go
package utils

import (
	"github.com/SaladRabbit/registerv2/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleErrorWithCode เหมือน HandleError แต่แนบ code ให้ client แยกเหตุผลได้
// ใช้กับ guard ที่ต้องบอกให้ชัดว่า "ไกลเกิน" หรือ "ผิดวัน"
func HandleErrorWithCode(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Code:    code,
	})
}
