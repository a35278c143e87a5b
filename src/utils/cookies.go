package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetStatusCookie เซ็ต app_status - จงใจไม่เป็น HttpOnly เพราะ client ต้องอ่านไป branch UI
func SetStatusCookie(c *fiber.Ctx, status string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieAppStatus,
		Value:    status,
		Path:     "/",
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SetSessionCookie เซ็ต checkin_session (JWT) แบบ HttpOnly - ห้าม script ฝั่ง client อ่าน
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieSession,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearStatusCookie ลบ app_status
func ClearStatusCookie(c *fiber.Ctx) {
	expireCookie(c, CookieAppStatus, false)
}

// ClearSessionCookie ลบ checkin_session
func ClearSessionCookie(c *fiber.Ctx) {
	expireCookie(c, CookieSession, true)
}

func expireCookie(c *fiber.Ctx, name string, httpOnly bool) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: httpOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
