package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/services/checkin"
	"github.com/SaladRabbit/registerv2/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CheckIn godoc
// @Summary Check in to a group meeting
// @Description Runs the server-side guards (geofence, meeting day, duplicate) and returns the resulting state
// @Tags check-in
// @Accept json
// @Produce json
// @Param request body models.CheckInRequest true "Check-in request"
// @Success 200 {object} models.CheckInResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /check-in [post]
func CheckIn(c *fiber.Ctx) error {
	var req models.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	result, err := checkin.ProcessCheckIn(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, checkin.ErrGroupNotFound):
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, checkin.ErrOutsideRadius):
			return utils.HandleErrorWithCode(c, http.StatusForbidden, err.Error(), "OUTSIDE_RADIUS")
		case errors.Is(err, checkin.ErrWrongDay):
			return utils.HandleErrorWithCode(c, http.StatusForbidden, err.Error(), "WRONG_DAY")
		case errors.Is(err, checkin.ErrDuplicateAttendance):
			return utils.HandleError(c, http.StatusConflict, err.Error())
		case errors.Is(err, checkin.ErrCreateMember), errors.Is(err, checkin.ErrCreateAttendance):
			log.Println("❌ Check-in persistence error:", err)
			return utils.HandleError(c, http.StatusInternalServerError, err.Error())
		default:
			log.Println("❌ Unhandled error in check-in:", err)
			return utils.HandleError(c, http.StatusInternalServerError, "An unexpected error occurred")
		}
	}

	// เซ็ต cookie ให้ middleware บังคับหน้า - สถานะอ่านได้จาก client,
	// ส่วน member/group ref ซ่อนใน JWT แบบ HttpOnly
	utils.SetStatusCookie(c, result.Status)
	switch result.Status {
	case models.StatusOrientationRequired, models.StatusNoEmailInfoRequired:
		token, terr := utils.GenerateSessionToken(result.MemberID, result.GroupID)
		if terr != nil {
			log.Println("❌ Failed to generate session token:", terr)
			return utils.HandleError(c, http.StatusInternalServerError, "An unexpected error occurred")
		}
		utils.SetSessionCookie(c, token)
	case models.StatusCheckinComplete:
		utils.ClearSessionCookie(c)
	}

	return c.JSON(models.CheckInResponse{
		Status:      result.Status,
		IsNewMember: result.IsNewMember,
	})
}
