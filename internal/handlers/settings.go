package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// SettingsHandler handles setting routes
type SettingsHandler struct {
	DB *gorm.DB
}

// settingRequest is the body of a setting upsert.
type settingRequest struct {
	Value json.RawMessage `json:"value"`
}

// GetSettings handles GET /api/settings
// @Summary Get all settings
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := services.GetSettings(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

// UpdateSetting handles PUT /api/settings/:key
// @Summary Create or update a setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param body body settingRequest true "Setting value"
// @Success 200 {object} models.Setting
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /settings/{key} [put]
func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	var req settingRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest("invalid request body")
	}
	if len(req.Value) == 0 {
		return types.BadRequest("value is required")
	}

	setting, err := services.UpsertSetting(h.DB, c.Params("key"), req.Value)
	if err != nil {
		return err
	}
	return c.JSON(setting)
}
