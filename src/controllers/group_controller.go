package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/qrcode"
	"github.com/SaladRabbit/registerv2/src/services/groups"
	"github.com/SaladRabbit/registerv2/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetGroups godoc
// @Summary List all groups
// @Tags groups
// @Produce json
// @Success 200 {array} models.Group
// @Router /groups [get]
func GetGroups(c *fiber.Ctx) error {
	result, err := groups.GetAllGroups(c.Context())
	if err != nil {
		log.Println("❌ Error fetching groups:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch groups")
	}
	return c.JSON(result)
}

// CreateGroup godoc
// @Summary Create a group (reference data seeding)
// @Tags groups
// @Accept json
// @Produce json
// @Param group body models.Group true "Group"
// @Success 201 {object} models.Group
// @Failure 400 {object} models.ErrorResponse
// @Router /groups [post]
func CreateGroup(c *fiber.Ctx) error {
	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&group); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	if err := groups.CreateGroup(c.Context(), &group); err != nil {
		log.Println("❌ Error creating group:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to create group")
	}
	return c.Status(http.StatusCreated).JSON(group)
}

// GroupsByDistance godoc
// @Summary List groups sorted by distance from the user
// @Tags groups
// @Accept json
// @Produce json
// @Param request body models.Geolocation true "User coordinates"
// @Success 200 {object} map[string]interface{}
// @Router /groups/by-distance [post]
func GroupsByDistance(c *fiber.Ctx) error {
	var loc models.Geolocation
	if err := c.BodyParser(&loc); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request format")
	}
	if err := utils.ValidateStruct(&loc); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	result, err := groups.GroupsByDistance(c.Context(), *loc.Latitude, *loc.Longitude)
	if err != nil {
		log.Println("❌ Error fetching groups by distance:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch groups")
	}
	return c.JSON(fiber.Map{"groups": result})
}

// GroupsByDay godoc
// @Summary List groups sorted by meeting-day proximity
// @Tags groups
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /groups/by-day [post]
func GroupsByDay(c *fiber.Ctx) error {
	// body ไม่บังคับ - ไม่ส่ง dayOfWeek มาใช้วันนี้
	var body struct {
		DayOfWeek int `json:"dayOfWeek"`
	}
	_ = c.BodyParser(&body)

	result, err := groups.GroupsByDay(c.Context(), body.DayOfWeek)
	if err != nil {
		log.Println("❌ Error fetching groups by day:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to fetch groups")
	}
	return c.JSON(fiber.Map{"groups": result})
}

// GroupQRCode godoc
// @Summary Check-in poster QR code for a group
// @Tags groups
// @Produce png
// @Param id path string true "Group id"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{id}/qrcode [get]
func GroupQRCode(c *fiber.Ctx) error {
	id := c.Params("id")
	group, err := groups.GetGroupByID(c.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, http.StatusNotFound, "Group not found")
		}
		return utils.HandleError(c, http.StatusBadRequest, "Invalid group id")
	}

	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:8888"
	}
	base = strings.TrimRight(base, "/")

	png, err := qrcode.GeneratePNG(fmt.Sprintf("%s/?groupId=%s", base, group.ID.Hex()), 256)
	if err != nil {
		log.Println("❌ Error generating QR code:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
