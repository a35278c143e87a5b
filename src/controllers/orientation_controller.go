package controllers

import (
	"log"
	"net/http"

	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/services/orientation"
	"github.com/SaladRabbit/registerv2/src/utils"

	"github.com/gofiber/fiber/v2"
)

// sessionClaims อ่าน checkin_session cookie - nil คือ session หมดอายุ/ไม่มี
func sessionClaims(c *fiber.Ctx) *utils.SessionClaims {
	token := c.Cookies(utils.CookieSession)
	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// SubmitBasicInfo godoc
// @Summary Submit orientation step 0 (basic info)
// @Description Persists basic info. No-email path records an anonymous attendance and ends; email path starts the wizard
// @Tags orientation
// @Accept json
// @Produce json
// @Param request body models.BasicInfoRequest true "Basic info"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /orientation/part1 [post]
func SubmitBasicInfo(c *fiber.Ctx) error {
	var req models.BasicInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	claims := sessionClaims(c)
	if claims == nil || claims.GroupID == "" {
		return utils.HandleError(c, http.StatusUnauthorized, "Session expired. Please start over.")
	}

	if req.IsNoEmail {
		// path ไม่มีอีเมล - บันทึกแถวนิรนามแล้วจบ flow เคลียร์ cookie ทั้งคู่
		if err := orientation.SubmitNoEmailInfo(c.Context(), claims.GroupID, &req); err != nil {
			log.Println("❌ Error creating no-email attendance:", err)
			return utils.HandleError(c, http.StatusInternalServerError, "Failed to save attendance")
		}
		utils.ClearStatusCookie(c)
		utils.ClearSessionCookie(c)
		return c.JSON(fiber.Map{"status": "SUCCESS"})
	}

	if claims.MemberID == "" {
		return utils.HandleError(c, http.StatusUnauthorized, "Member session not found. Please sign in again.")
	}

	if err := orientation.SubmitBasicInfo(c.Context(), claims.MemberID, claims.GroupID, &req); err != nil {
		log.Println("❌ Error persisting orientation step 0:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to save orientation details.")
	}

	// คง session ไว้ให้ step ถัดไป - app_status ยังเป็น ORIENTATION_REQUIRED
	return c.JSON(fiber.Map{"status": "SUCCESS"})
}

// CompleteOrientation godoc
// @Summary Submit the final orientation step
// @Description Saves emergency contact, research answers and consents, then marks orientation complete
// @Tags orientation
// @Accept json
// @Produce json
// @Param request body models.CompleteOrientationRequest true "Remaining orientation fields"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /orientation/part2 [post]
func CompleteOrientation(c *fiber.Ctx) error {
	var req models.CompleteOrientationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	claims := sessionClaims(c)
	if claims == nil || claims.MemberID == "" {
		return utils.HandleError(c, http.StatusUnauthorized, "User session not found. Please sign in again.")
	}

	if err := orientation.CompleteOrientation(c.Context(), claims.MemberID, &req); err != nil {
		log.Println("❌ Error completing orientation:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to save orientation details")
	}

	// orientation จบแล้ว - เหลือแค่สถานะให้หน้า complete ส่วน ref ลับทิ้งได้
	utils.SetStatusCookie(c, models.StatusCheckinComplete)
	utils.ClearSessionCookie(c)

	return c.JSON(fiber.Map{"status": "SUCCESS"})
}
