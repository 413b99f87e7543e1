package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// RolesHandler handles role routes
type RolesHandler struct {
	DB *gorm.DB
}

// reorderRequest is the body of a batch reorder.
type reorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

// ListRoles handles GET /api/roles
// @Summary List roles
// @Description Get all roles in display order
// @Tags Roles
// @Produce json
// @Success 200 {array} models.Role
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /roles [get]
func (h *RolesHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := services.ListRoles(h.DB)
	if err != nil {
		return err
	}
	return c.JSON(roles)
}

// GetRole handles GET /api/roles/:id
// @Summary Get a role
// @Tags Roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} models.Role
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /roles/{id} [get]
func (h *RolesHandler) GetRole(c *fiber.Ctx) error {
	role, err := services.GetRole(h.DB, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(role)
}

// CreateRole handles POST /api/roles
// @Summary Create a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param role body services.RoleInput true "Role payload"
// @Success 201 {object} models.Role
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /roles [post]
func (h *RolesHandler) CreateRole(c *fiber.Ctx) error {
	var in services.RoleInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	role, err := services.CreateRole(h.DB, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

// UpdateRole handles PUT /api/roles/:id
// @Summary Update a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body services.RoleInput true "Role payload"
// @Success 200 {object} models.Role
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /roles/{id} [put]
func (h *RolesHandler) UpdateRole(c *fiber.Ctx) error {
	var in services.RoleInput
	if err := c.BodyParser(&in); err != nil {
		return types.BadRequest("invalid request body")
	}

	role, err := services.UpdateRole(h.DB, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(role)
}

// DeleteRole handles DELETE /api/roles/:id
// @Summary Delete a role
// @Tags Roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /roles/{id} [delete]
func (h *RolesHandler) DeleteRole(c *fiber.Ctx) error {
	if err := services.DeleteRole(h.DB, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReorderRoles handles POST /api/roles/reorder
// @Summary Reorder roles
// @Description Atomically reassign display order by list position
// @Tags Roles
// @Accept json
// @Produce json
// @Param body body reorderRequest true "Ordered role ids"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /roles/reorder [post]
func (h *RolesHandler) ReorderRoles(c *fiber.Ctx) error {
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return types.BadRequest("invalid request body")
	}

	if err := services.ReorderRoles(h.DB, req.OrderedIDs); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
