package handlers

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/gitrepo"
	"github.com/gobodhi/tour-cms/internal/types"
)

// UploadHandler relays screenshot uploads into the content repository.
// Nothing touches local disk; the image goes straight from the request
// body to a commit.
type UploadHandler struct {
	Repo *gitrepo.Client
	Cfg  *config.Config
}

// UploadScreenshot handles POST /api/upload/screenshot
// @Summary Upload a screenshot
// @Description Commit an image to the content repository and return its raw URL
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Param filename formData string false "Desired filename"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /upload/screenshot [post]
func (h *UploadHandler) UploadScreenshot(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return types.BadRequest("No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	ext := path.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".png"
	}
	filename := c.FormValue("filename")
	if filename == "" {
		filename = fmt.Sprintf("screenshot-%d%s", time.Now().UnixMilli(), ext)
	}
	filepath := path.Join(h.Cfg.ScreenshotsPath, filename)

	message := fmt.Sprintf("Upload screenshot: %s", filename)
	if _, err := h.Repo.CommitFile(c.Context(), filepath, content, message); err != nil {
		return err
	}

	// Raw content is fetchable as soon as the commit lands.
	return c.JSON(fiber.Map{
		"success": true,
		"path":    h.Repo.RawURL(filepath),
	})
}
