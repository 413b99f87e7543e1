package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// TopicsHandler handles topic routes
type TopicsHandler struct {
	DB *gorm.DB
}

// ListTopics handles GET /api/topics
// @Summary List topics
// @Tags Topics
// @Produce json
// @Success 200 {array} models.Topic
// @Router /topics [get]
func (h *TopicsHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := services.ListTopics(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(topics)
}

// GetTopic handles GET /api/topics/:id
// @Summary Get a topic
// @Tags Topics
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} models.Topic
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /topics/{id} [get]
func (h *TopicsHandler) GetTopic(c *fiber.Ctx) error {
	topic, err := services.GetTopic(h.DB, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(topic)
}

// CreateTopic handles POST /api/topics
// @Summary Create a topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param topic body services.TopicInput true "Topic payload"
// @Success 201 {object} models.Topic
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /topics [post]
func (h *TopicsHandler) CreateTopic(c *fiber.Ctx) error {
	var in services.TopicInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	topic, err := services.CreateTopic(h.DB, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

// UpdateTopic handles PUT /api/topics/:id
// @Summary Update a topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param topic body services.TopicInput true "Topic payload"
// @Success 200 {object} models.Topic
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /topics/{id} [put]
func (h *TopicsHandler) UpdateTopic(c *fiber.Ctx) error {
	var in services.TopicInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	topic, err := services.UpdateTopic(h.DB, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(topic)
}

// DeleteTopic handles DELETE /api/topics/:id
// @Summary Delete a topic and its screens and hotspots
// @Tags Topics
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /topics/{id} [delete]
func (h *TopicsHandler) DeleteTopic(c *fiber.Ctx) error {
	if err := services.DeleteTopic(h.DB, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
