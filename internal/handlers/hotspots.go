package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// HotspotsHandler handles hotspot routes
type HotspotsHandler struct {
	DB *gorm.DB
}

// batchPositionsRequest is the body of PUT /hotspots/batch-positions.
type batchPositionsRequest struct {
	Updates []services.HotspotPosition `json:"updates"`
}

// ListHotspotsByScreen handles GET /api/hotspots/screen/:screenId
// @Summary List a screen's hotspots
// @Tags Hotspots
// @Produce json
// @Param screenId path string true "Screen ID"
// @Success 200 {array} models.Hotspot
// @Router /hotspots/screen/{screenId} [get]
func (h *HotspotsHandler) ListHotspotsByScreen(c *fiber.Ctx) error {
	hotspots, err := services.ListHotspotsByScreen(h.DB, c.Params("screenId"))
	if err != nil {
		return err
	}
	return c.JSON(hotspots)
}

// CreateHotspot handles POST /api/hotspots
// @Summary Create a hotspot
// @Tags Hotspots
// @Accept json
// @Produce json
// @Param hotspot body services.HotspotInput true "Hotspot payload"
// @Success 201 {object} models.Hotspot
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /hotspots [post]
func (h *HotspotsHandler) CreateHotspot(c *fiber.Ctx) error {
	var in services.HotspotInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	hotspot, err := services.CreateHotspot(h.DB, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(hotspot)
}

// UpdateHotspot handles PUT /api/hotspots/:id
// @Summary Update a hotspot
// @Tags Hotspots
// @Accept json
// @Produce json
// @Param id path string true "Hotspot ID"
// @Param hotspot body services.HotspotInput true "Hotspot payload"
// @Success 200 {object} models.Hotspot
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /hotspots/{id} [put]
func (h *HotspotsHandler) UpdateHotspot(c *fiber.Ctx) error {
	var in services.HotspotInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	hotspot, err := services.UpdateHotspot(h.DB, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(hotspot)
}

// DeleteHotspot handles DELETE /api/hotspots/:id
// @Summary Delete a hotspot
// @Tags Hotspots
// @Produce json
// @Param id path string true "Hotspot ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /hotspots/{id} [delete]
func (h *HotspotsHandler) DeleteHotspot(c *fiber.Ctx) error {
	if err := services.DeleteHotspot(h.DB, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// BatchPositions handles PUT /api/hotspots/batch-positions
// @Summary Batch update hotspot positions
// @Description Move several hotspots at once; all updates commit or none do
// @Tags Hotspots
// @Accept json
// @Produce json
// @Param body body batchPositionsRequest true "Position updates"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /hotspots/batch-positions [put]
func (h *HotspotsHandler) BatchPositions(c *fiber.Ctx) error {
	var req batchPositionsRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest("invalid request body")
	}

	if err := services.BatchUpdatePositions(h.DB, req.Updates); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReorderHotspots handles POST /api/hotspots/reorder
// @Summary Reorder hotspots
// @Description Atomically reassign display order by list position
// @Tags Hotspots
// @Accept json
// @Produce json
// @Param body body reorderRequest true "Ordered hotspot ids"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /hotspots/reorder [post]
func (h *HotspotsHandler) ReorderHotspots(c *fiber.Ctx) error {
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest("invalid request body")
	}

	if err := services.ReorderHotspots(h.DB, req.OrderedIDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
