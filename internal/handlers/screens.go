package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// ScreensHandler handles screen routes
type ScreensHandler struct {
	DB *gorm.DB
}

// ListScreensByTopic handles GET /api/screens/topic/:topicId
// @Summary List a topic's screens
// @Tags Screens
// @Produce json
// @Param topicId path string true "Topic ID"
// @Success 200 {array} models.Screen
// @Router /screens/topic/{topicId} [get]
func (h *ScreensHandler) ListScreensByTopic(c *fiber.Ctx) error {
	screens, err := services.ListScreensByTopic(h.DB, c.Params("topicId"))
	if err != nil {
		return err
	}
	return c.JSON(screens)
}

// CreateScreen handles POST /api/screens
// @Summary Create a screen
// @Tags Screens
// @Accept json
// @Produce json
// @Param screen body services.ScreenInput true "Screen payload"
// @Success 201 {object} models.Screen
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /screens [post]
func (h *ScreensHandler) CreateScreen(c *fiber.Ctx) error {
	var in services.ScreenInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	screen, err := services.CreateScreen(h.DB, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(screen)
}

// UpdateScreen handles PUT /api/screens/:id
// @Summary Update a screen
// @Tags Screens
// @Accept json
// @Produce json
// @Param id path string true "Screen ID"
// @Param screen body services.ScreenInput true "Screen payload"
// @Success 200 {object} models.Screen
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /screens/{id} [put]
func (h *ScreensHandler) UpdateScreen(c *fiber.Ctx) error {
	var in services.ScreenInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	screen, err := services.UpdateScreen(h.DB, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(screen)
}

// DeleteScreen handles DELETE /api/screens/:id
// @Summary Delete a screen and its hotspots
// @Tags Screens
// @Produce json
// @Param id path string true "Screen ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /screens/{id} [delete]
func (h *ScreensHandler) DeleteScreen(c *fiber.Ctx) error {
	if err := services.DeleteScreen(h.DB, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
