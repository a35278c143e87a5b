package middleware

import (
	"strings"

	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/utils"

	"github.com/gofiber/fiber/v2"
)

// หน้าของแอป - middleware บังคับว่าแต่ละสถานะไปได้หน้าเดียวเท่านั้น
const (
	PageHome        = "/"
	PageOrientation = "/orientation"
	PageBasicInfo   = "/basic-info"
	PageComplete    = "/complete"
)

// TargetPage หน้าเดียวที่สถานะนั้นไปได้ - "" คือไม่จำกัด (ยังไม่เช็คอิน)
func TargetPage(status string) string {
	switch status {
	case models.StatusOrientationRequired:
		return PageOrientation
	case models.StatusNoEmailInfoRequired:
		return PageBasicInfo
	case models.StatusCheckinComplete:
		return PageComplete
	}
	return ""
}

// SessionGate "bouncer" คุมการนำทางตาม app_status cookie
// ข้าม API/swagger/static - พวกนั้นไม่ใช่หน้า ไม่งั้น redirect วนตาย
func SessionGate(c *fiber.Ctx) error {
	path := c.Path()
	if strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/swagger") ||
		strings.HasPrefix(path, "/public") {
		return c.Next()
	}

	status := c.Cookies(utils.CookieAppStatus)
	target := TargetPage(status)
	if target == "" {
		// ไม่มี state token = ยังไม่เช็คอิน เดินได้อิสระ
		return c.Next()
	}

	if path == target {
		if status == models.StatusCheckinComplete {
			// ถึงหน้า complete แล้ว - ล้าง state token ครั้งเดียวตรงนี้
			utils.ClearStatusCookie(c)
			utils.ClearSessionCookie(c)
		}
		return c.Next()
	}

	return c.Redirect(target, fiber.StatusSeeOther)
}
