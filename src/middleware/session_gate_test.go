package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestTargetPage(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{models.StatusOrientationRequired, PageOrientation},
		{models.StatusNoEmailInfoRequired, PageBasicInfo},
		{models.StatusCheckinComplete, PageComplete},
		{"", ""},
		{"SOMETHING_ELSE", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TargetPage(tc.status), "status %q", tc.status)
	}
}

func newGateApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionGate)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get(PageHome, ok)
	app.Get(PageOrientation, ok)
	app.Get(PageBasicInfo, ok)
	app.Get(PageComplete, ok)
	app.Get("/api/ping", ok)
	return app
}

func gateRequest(t *testing.T, app *fiber.App, path, status string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if status != "" {
		req.AddCookie(&http.Cookie{Name: utils.CookieAppStatus, Value: status})
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestSessionGate(t *testing.T) {
	app := newGateApp()

	t.Run("NoStatusRoamsFreely", func(t *testing.T) {
		resp := gateRequest(t, app, PageHome, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = gateRequest(t, app, PageOrientation, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("OrientationRequiredRedirectsToOrientation", func(t *testing.T) {
		resp := gateRequest(t, app, PageHome, models.StatusOrientationRequired)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, PageOrientation, resp.Header.Get("Location"))
	})

	t.Run("OrientationRequiredAllowsOrientationPage", func(t *testing.T) {
		resp := gateRequest(t, app, PageOrientation, models.StatusOrientationRequired)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("NoEmailStatusRedirectsToBasicInfo", func(t *testing.T) {
		resp := gateRequest(t, app, PageComplete, models.StatusNoEmailInfoRequired)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, PageBasicInfo, resp.Header.Get("Location"))
	})

	t.Run("CompleteStatusRedirectsToComplete", func(t *testing.T) {
		resp := gateRequest(t, app, PageHome, models.StatusCheckinComplete)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, PageComplete, resp.Header.Get("Location"))
	})

	t.Run("CompletePageClearsCookies", func(t *testing.T) {
		resp := gateRequest(t, app, PageComplete, models.StatusCheckinComplete)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		// ทั้ง app_status และ checkin_session ต้องถูก expire ตรงนี้
		cleared := map[string]bool{}
		for _, sc := range resp.Header.Values("Set-Cookie") {
			if strings.HasPrefix(sc, utils.CookieAppStatus+"=") {
				cleared[utils.CookieAppStatus] = true
			}
			if strings.HasPrefix(sc, utils.CookieSession+"=") {
				cleared[utils.CookieSession] = true
			}
		}
		assert.True(t, cleared[utils.CookieAppStatus])
		assert.True(t, cleared[utils.CookieSession])
	})

	t.Run("APIPathsBypassTheGate", func(t *testing.T) {
		resp := gateRequest(t, app, "/api/ping", models.StatusOrientationRequired)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
