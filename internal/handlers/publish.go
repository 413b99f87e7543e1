package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/gitrepo"
	"github.com/gobodhi/tour-cms/internal/middleware"
	"github.com/gobodhi/tour-cms/internal/services"
	"gorm.io/gorm"
)

// PublishHandler handles the publish pipeline routes
type PublishHandler struct {
	DB   *gorm.DB
	Repo *gitrepo.Client
	Cfg  *config.Config
}

// Preview handles GET /api/publish/preview
// @Summary Preview the generated tour document
// @Description Generate the snapshot without publishing it
// @Tags Publish
// @Produce json
// @Success 200 {object} tour.Document
// @Router /publish/preview [get]
func (h *PublishHandler) Preview(c *fiber.Ctx) error {
	doc, err := services.ExportTourDocument(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// Publish handles POST /api/publish
// @Summary Publish the tour document to the content repository
// @Tags Publish
// @Produce json
// @Success 200 {object} services.PublishResult
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /publish [post]
func (h *PublishHandler) Publish(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	result, err := services.PublishTourData(c.Context(), h.DB, h.Repo, h.Cfg, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// History handles GET /api/publish/history
// @Summary Get the publish audit log
// @Description Latest 20 publishes, newest first
// @Tags Publish
// @Produce json
// @Success 200 {array} models.Publish
// @Router /publish/history [get]
func (h *PublishHandler) History(c *fiber.Ctx) error {
	history, err := services.PublishHistory(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(history)
}

// Import handles POST /api/publish/import
// @Summary Replace the content store from the published tour document
// @Tags Publish
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /publish/import [post]
func (h *PublishHandler) Import(c *fiber.Ctx) error {
	result, err := services.ImportTourDocument(c.Context(), h.DB, h.Repo, h.Cfg)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"imported": result,
	})
}
