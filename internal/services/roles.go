package services

import (
	"errors"

	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// RoleInput carries a partial role payload. Nil fields are left untouched
// on update.
type RoleInput struct {
	Name              *string   `json:"name"`
	Description       *string   `json:"description"`
	Icon              *string   `json:"icon"`
	VideoURL          *string   `json:"videoUrl"`
	RecommendedTopics *[]string `json:"recommendedTopics"`
	Order             *int      `json:"order"`
}

// ListRoles returns all roles in display order.
func ListRoles(db *gorm.DB) ([]models.Role, error) {
	var roles []models.Role
	if err := db.Order("display_order asc").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRole returns one role by id.
func GetRole(db *gorm.DB, id string) (*models.Role, error) {
	var role models.Role
	if err := db.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Role")
		}
		return nil, err
	}
	return &role, nil
}

// CreateRole persists a new role at the end of the display sequence.
func CreateRole(db *gorm.DB, in RoleInput) (*models.Role, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, types.BadRequest("name is required")
	}

	maxOrder, err := maxOrderIn(db, &models.Role{}, "", "")
	if err != nil {
		return nil, err
	}

	role := models.Role{
		Name:              *in.Name,
		Order:             maxOrder + 1,
		RecommendedTopics: []string{},
	}
	applyRoleInput(&role, in)

	if err := db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole applies the non-nil fields of the input to an existing role.
func UpdateRole(db *gorm.DB, id string, in RoleInput) (*models.Role, error) {
	role, err := GetRole(db, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Order != nil {
		role.Order = *in.Order
	}
	applyRoleInput(role, in)

	if err := db.Save(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole removes a role. Roles own nothing, so no cascade is needed;
// topic recommendation lists reference roles weakly.
func DeleteRole(db *gorm.DB, id string) error {
	result := db.Delete(&models.Role{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NotFound("Role")
	}
	return nil
}

// ReorderRoles reassigns display order by position in orderedIDs. The
// whole batch commits or none of it does.
func ReorderRoles(db *gorm.DB, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for index, id := range orderedIDs {
			var role models.Role
			if err := tx.First(&role, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return types.NotFound("Role")
				}
				return err
			}
			if err := tx.Model(&role).Update("display_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func applyRoleInput(role *models.Role, in RoleInput) {
	if in.Description != nil {
		role.Description = *in.Description
	}
	if in.Icon != nil {
		role.Icon = *in.Icon
	}
	if in.VideoURL != nil {
		role.VideoURL = *in.VideoURL
	}
	if in.RecommendedTopics != nil {
		role.RecommendedTopics = *in.RecommendedTopics
	}
}
